package postgres

import (
	"context"
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"lensauth/internal/infra/persistence/postgres/migrations"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_EmbeddedAndOrdered(t *testing.T) {
	entries, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for _, name := range entries {
		body, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), name)
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), name)
	}

	body, err := fs.ReadFile(migrations.FS, "00002_refresh_credentials.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "idx_refresh_credentials_account_id ON refresh_credentials (account_id)")
}

func TestRunMigrations_UsesEmbeddedRoot(t *testing.T) {
	original := gooseUp
	t.Cleanup(func() { gooseUp = original })

	var gotDir string
	gooseUp = func(_ context.Context, _ *sql.DB, dir string) error {
		gotDir = dir

		return nil
	}
	require.NoError(t, RunMigrations(context.Background(), nil))
	assert.Equal(t, ".", gotDir)

	gooseUp = func(context.Context, *sql.DB, string) error {
		return errors.New("boom")
	}
	err := RunMigrations(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply migrations")
}
