package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
env:
  env: test
  serviceName: lensauth
  log:
    level: info
secretKey:
  access: file-access
  refresh: file-refresh
store:
  refreshBackend: memory
  accountBackend: memory
`

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lensauth.yaml"), []byte(minimalYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "env-access")

	cfg, err := LoadWithEnv[Config]("lensauth")
	require.NoError(t, err)

	assert.Equal(t, "env-access", cfg.SecretKey.Access)
	assert.Equal(t, "file-refresh", cfg.SecretKey.Refresh)
	assert.Equal(t, BackendMemory, cfg.Store.RefreshBackend)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, 900*time.Second, cfg.Token.AccessTTL)
	assert.Equal(t, 5*24*time.Hour, cfg.Token.RefreshTTL)
	assert.True(t, cfg.Cookie.Secure)
	assert.Equal(t, "lax", cfg.Cookie.SameSite)
	assert.Equal(t, "/v1/api", cfg.HTTP.BasePath)
	assert.Equal(t, BackendPostgres, cfg.Store.RefreshBackend)
	assert.Equal(t, 10*time.Minute, cfg.Recovery.CodeTTL)
	assert.Equal(t, DefaultPlaceholderCharset, cfg.Auth.PlaceholderCharset)
	assert.Equal(t, "noop", cfg.PubSub.Provider)
}

func TestValidate(t *testing.T) {
	newCfg := func(mutate func(*Config)) *Config {
		cfg := &Config{}
		cfg.SecretKey.Access = "a"
		cfg.SecretKey.Refresh = "r"
		cfg.ApplyDefaults()
		cfg.Store.RefreshBackend = BackendMemory
		cfg.Store.AccountBackend = BackendMemory
		mutate(cfg)

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing access secret", mutate: func(c *Config) { c.SecretKey.Access = "" }, wantErr: "required"},
		{name: "shared secret", mutate: func(c *Config) { c.SecretKey.Refresh = "a" }, wantErr: "must differ"},
		{name: "redis without addr", mutate: func(c *Config) { c.Store.RefreshBackend = BackendRedis }, wantErr: "redis.addr"},
		{name: "unknown refresh backend", mutate: func(c *Config) { c.Store.RefreshBackend = "mongo" }, wantErr: "unknown store.refreshBackend"},
		{name: "postgres without section", mutate: func(c *Config) { c.Store.AccountBackend = BackendPostgres }, wantErr: "postgres section"},
		{
			name: "postgres refresh over memory accounts",
			mutate: func(c *Config) {
				c.Store.RefreshBackend = BackendPostgres
				c.Postgres = &postgres.DBConn{}
			},
			wantErr: "requires store.accountBackend postgres",
		},
		{
			name: "postgres for both stores",
			mutate: func(c *Config) {
				c.Store.RefreshBackend = BackendPostgres
				c.Store.AccountBackend = BackendPostgres
				c.Postgres = &postgres.DBConn{}
			},
		},
		{
			name: "redis refresh over memory accounts",
			mutate: func(c *Config) {
				c.Store.RefreshBackend = BackendRedis
				c.Redis = &RedisConfig{Addr: "localhost:6379"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newCfg(tt.mutate).Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
