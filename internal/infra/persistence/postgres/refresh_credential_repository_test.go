package postgres

import (
	"context"
	"testing"
	"time"

	"lensauth/internal/domain/entity"
	"lensauth/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type capturedStatement struct {
	sql  string
	vars []any
}

// newDryRunRepository builds the repository over a dry-run session that renders
// PostgreSQL statements without a server.
func newDryRunRepository(t *testing.T, now time.Time) (*refreshCredentialRepository, *[]capturedStatement) {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=lensauth dbname=lensauth sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	captured := &[]capturedStatement{}
	capture := func(tx *gorm.DB) {
		*captured = append(*captured, capturedStatement{
			sql:  tx.Statement.SQL.String(),
			vars: append([]any(nil), tx.Statement.Vars...),
		})
	}
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture_create", capture))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:capture_update", capture))

	return &refreshCredentialRepository{db: db, now: func() time.Time { return now }}, captured
}

func TestRefreshCredentialRepository_ReplaceUpsertsOnAccount(t *testing.T) {
	repo, captured := newDryRunRepository(t, time.Now())

	err := repo.Replace(context.Background(), &entity.RefreshCredential{
		AccountID: uuid.New(),
		TokenHash: "next-hash",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	require.Len(t, *captured, 1)

	sql := (*captured)[0].sql
	assert.Contains(t, sql, `INSERT INTO "refresh_credentials"`)
	assert.Contains(t, sql, `ON CONFLICT ("account_id") DO UPDATE SET`)
	for _, column := range []string{"id", "token_hash", "blacklisted", "created_at", "expires_at"} {
		assert.Contains(t, sql, `"`+column+`"="excluded"."`+column+`"`)
	}
	assert.NotContains(t, sql, `"account_id"="excluded"."account_id"`)
}

func TestRefreshCredentialRepository_RotateComparesPreviousHash(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo, captured := newDryRunRepository(t, now)
	accountID := uuid.New()

	err := repo.Rotate(context.Background(), "previous-hash", &entity.RefreshCredential{
		AccountID: accountID,
		TokenHash: "next-hash",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	})
	// A dry run touches no rows, which reads as a lost race.
	require.ErrorIs(t, err, repository.ErrRefreshCredentialConflict)
	require.Len(t, *captured, 1)

	stmt := (*captured)[0]
	assert.Contains(t, stmt.sql, `UPDATE "refresh_credentials" SET`)
	assert.Regexp(t, `WHERE account_id = \$\d+ AND token_hash = \$\d+ AND blacklisted = \$\d+ AND expires_at > \$\d+$`, stmt.sql)

	require.GreaterOrEqual(t, len(stmt.vars), 4)
	where := stmt.vars[len(stmt.vars)-4:]
	assert.Equal(t, accountID, where[0])
	assert.Equal(t, "previous-hash", where[1])
	assert.Equal(t, false, where[2])
	assert.Equal(t, now, where[3])
	assert.Contains(t, stmt.vars, "next-hash")
}
