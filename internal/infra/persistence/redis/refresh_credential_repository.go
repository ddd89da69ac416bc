package redis

import (
	"context"
	"strconv"
	"time"

	"lensauth/internal/domain/entity"
	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "lensauth:refresh:"

	// Keys outlive the record by this much so reads can still report it as expired.
	expiredRetention = time.Hour
)

// Each account owns one hash at <prefix>acct:<accountID>; a string key at
// <prefix>token:<hash> points back to the account. Both carry the same PEXPIREAT.

const replaceScript = `
local old = redis.call("HGET", KEYS[1], "token_hash")
if old then
  redis.call("DEL", ARGV[1] .. "token:" .. old)
end
redis.call("DEL", KEYS[1])
redis.call("HSET", KEYS[1], "id", ARGV[2], "token_hash", ARGV[3], "blacklisted", "0", "created_at", ARGV[4], "expires_at", ARGV[5])
redis.call("PEXPIREAT", KEYS[1], ARGV[6])
redis.call("SET", KEYS[2], ARGV[7])
redis.call("PEXPIREAT", KEYS[2], ARGV[6])
return 1
`

const rotateScript = `
local cur = redis.call("HMGET", KEYS[1], "token_hash", "blacklisted", "expires_at")
if not cur[1] then
  return 0
end
if cur[1] ~= ARGV[2] or cur[2] == "1" or tonumber(cur[3]) <= tonumber(ARGV[3]) then
  return 0
end
redis.call("DEL", ARGV[1] .. "token:" .. cur[1])
redis.call("HSET", KEYS[1], "id", ARGV[4], "token_hash", ARGV[5], "blacklisted", "0", "created_at", ARGV[6], "expires_at", ARGV[7])
redis.call("PEXPIREAT", KEYS[1], ARGV[8])
redis.call("SET", KEYS[2], ARGV[9])
redis.call("PEXPIREAT", KEYS[2], ARGV[8])
return 1
`

const blacklistScript = `
local account = redis.call("GET", KEYS[1])
if not account then
  return 0
end
local acct = ARGV[1] .. "acct:" .. account
if redis.call("HGET", acct, "token_hash") ~= ARGV[2] then
  return 0
end
redis.call("HSET", acct, "blacklisted", "1")
return 1
`

const deleteScript = `
local old = redis.call("HGET", KEYS[1], "token_hash")
if old then
  redis.call("DEL", ARGV[1] .. "token:" .. old)
end
return redis.call("DEL", KEYS[1])
`

var (
	replaceLua   = goredis.NewScript(replaceScript)
	rotateLua    = goredis.NewScript(rotateScript)
	blacklistLua = goredis.NewScript(blacklistScript)
	deleteLua    = goredis.NewScript(deleteScript)
)

// refreshCredentialRepository implements repository.RefreshCredentialRepository on Redis.
// Every mutation is a single Lua script, so Rotate is a compare-and-swap.
type refreshCredentialRepository struct {
	client goredis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewRefreshCredentialRepository is the constructor for refreshCredentialRepository.
func NewRefreshCredentialRepository(client *goredis.Client) repository.RefreshCredentialRepository {
	return newRefreshCredentialRepository(client, defaultKeyPrefix, time.Now)
}

func newRefreshCredentialRepository(client goredis.UniversalClient, prefix string, now func() time.Time) *refreshCredentialRepository {
	return &refreshCredentialRepository{client: client, prefix: prefix, now: now}
}

func (repo *refreshCredentialRepository) accountKey(accountID uuid.UUID) string {
	return repo.prefix + "acct:" + accountID.String()
}

func (repo *refreshCredentialRepository) tokenKey(tokenHash string) string {
	return repo.prefix + "token:" + tokenHash
}

func (repo *refreshCredentialRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshCredential, error) {
	rawID, err := repo.client.Get(ctx, repo.tokenKey(tokenHash)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrRefreshCredentialNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "redis.refresh.find_by_hash")
	}

	accountID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "redis.refresh.find_by_hash")
	}

	credential, err := repo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if credential.TokenHash != tokenHash {
		return nil, repository.ErrRefreshCredentialNotFound
	}

	return credential, nil
}

func (repo *refreshCredentialRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.RefreshCredential, error) {
	fields, err := repo.client.HGetAll(ctx, repo.accountKey(accountID)).Result()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "redis.refresh.find_by_account")
	}
	if len(fields) == 0 {
		return nil, repository.ErrRefreshCredentialNotFound
	}

	credential, err := decodeCredential(accountID, fields)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "redis.refresh.decode")
	}
	if credential.IsExpired(repo.now()) {
		return nil, repository.ErrRefreshCredentialExpired
	}

	return credential, nil
}

func (repo *refreshCredentialRepository) Replace(ctx context.Context, credential *entity.RefreshCredential) error {
	if credential.ID == uuid.Nil {
		credential.ID = uuid.New()
	}

	err := replaceLua.Run(ctx, repo.client,
		[]string{repo.accountKey(credential.AccountID), repo.tokenKey(credential.TokenHash)},
		repo.prefix,
		credential.ID.String(),
		credential.TokenHash,
		credential.CreatedAt.UnixMilli(),
		credential.ExpiresAt.UnixMilli(),
		credential.ExpiresAt.Add(expiredRetention).UnixMilli(),
		credential.AccountID.String(),
	).Err()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "redis.refresh.replace")
	}

	return nil
}

func (repo *refreshCredentialRepository) Rotate(ctx context.Context, previousHash string, next *entity.RefreshCredential) error {
	if next.ID == uuid.Nil {
		next.ID = uuid.New()
	}

	swapped, err := rotateLua.Run(ctx, repo.client,
		[]string{repo.accountKey(next.AccountID), repo.tokenKey(next.TokenHash)},
		repo.prefix,
		previousHash,
		repo.now().UnixMilli(),
		next.ID.String(),
		next.TokenHash,
		next.CreatedAt.UnixMilli(),
		next.ExpiresAt.UnixMilli(),
		next.ExpiresAt.Add(expiredRetention).UnixMilli(),
		next.AccountID.String(),
	).Int64()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "redis.refresh.rotate")
	}
	if swapped == 0 {
		return errors.WithStack(repository.ErrRefreshCredentialConflict)
	}

	return nil
}

func (repo *refreshCredentialRepository) Blacklist(ctx context.Context, tokenHash string) error {
	flagged, err := blacklistLua.Run(ctx, repo.client,
		[]string{repo.tokenKey(tokenHash)},
		repo.prefix,
		tokenHash,
	).Int64()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "redis.refresh.blacklist")
	}
	if flagged == 0 {
		return errors.WithStack(repository.ErrRefreshCredentialNotFound)
	}

	return nil
}

func (repo *refreshCredentialRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	if err := deleteLua.Run(ctx, repo.client,
		[]string{repo.accountKey(accountID)},
		repo.prefix,
	).Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "redis.refresh.delete_by_account")
	}

	return nil
}

// DeleteExpired is a no-op: Redis drops the keys once the retention window passes.
func (repo *refreshCredentialRepository) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}

func decodeCredential(accountID uuid.UUID, fields map[string]string) (*entity.RefreshCredential, error) {
	id, err := uuid.Parse(fields["id"])
	if err != nil {
		return nil, errors.Wrap(err, "parse id")
	}

	createdAt, err := parseMillis(fields["created_at"])
	if err != nil {
		return nil, errors.Wrap(err, "parse created_at")
	}

	expiresAt, err := parseMillis(fields["expires_at"])
	if err != nil {
		return nil, errors.Wrap(err, "parse expires_at")
	}

	return &entity.RefreshCredential{
		ID:          id,
		AccountID:   accountID,
		TokenHash:   fields["token_hash"],
		Blacklisted: fields["blacklisted"] == "1",
		CreatedAt:   createdAt,
		ExpiresAt:   expiresAt,
	}, nil
}

func parseMillis(raw string) (time.Time, error) {
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, errors.WithStack(err)
	}

	return time.UnixMilli(ms), nil
}
