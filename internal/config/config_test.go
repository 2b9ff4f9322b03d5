package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "./data/presence.db", cfg.DBPath)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "Liste de présence de Bloom", cfg.Report.Title)
	assert.Equal(t, "coach", cfg.Admin.Name)
	assert.Equal(t, 12*time.Hour, cfg.Admin.TokenTTL)
	assert.Equal(t, DefaultRosters, cfg.Rosters)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadLogLevelFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("LOG_LEVEL", "debug")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	t.Setenv("BLOOM_LOG_LEVEL", "warn")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "bloom.yaml")
	content := `
db_path: /tmp/bloom/test.db
port: 9090
report:
  title: Séance du samedi
rosters:
  coachs:
    - aurel
    - valérie
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("BLOOM_PORT", "9191")
	t.Setenv("BLOOM_ADMIN_TOKEN_TTL", "30m")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/bloom/test.db", cfg.DBPath)
	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, "Séance du samedi", cfg.Report.Title)
	assert.Equal(t, 30*time.Minute, cfg.Admin.TokenTTL)
	assert.Equal(t, []string{"aurel", "valérie"}, cfg.Rosters.Coaches)
	assert.Equal(t, DefaultRosters.Girls, cfg.Rosters.Girls)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BLOOM_DB_PATH=/tmp/from-dotenv.db\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("BLOOM_DB_PATH") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-dotenv.db", cfg.DBPath)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DBPath: "bloom.db",
			Port:   8080,
			Admin:  AdminConfig{Name: "coach", TokenTTL: time.Hour},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty db path", func(c *Config) { c.DBPath = "" }, true},
		{"bad port", func(c *Config) { c.Port = 70000 }, true},
		{"hash without secret", func(c *Config) { c.Admin.PasswordHash = "$2a$10$x" }, true},
		{"hash with secret", func(c *Config) { c.Admin.PasswordHash = "$2a$10$x"; c.Admin.JWTSecret = "s" }, false},
		{"zero ttl", func(c *Config) { c.Admin.TokenTTL = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
