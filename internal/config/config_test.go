package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "port: 4000\n"))
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.Equal(t, "SCTS Institute", cfg.SiteName)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
port: 8080
env: production
base_url: https://api.scts.example.com/
allowed_origins:
  - https://scts.example.com
database:
  host: db.internal
  user: scts
  password: secret
  name: scts_prod
jwt:
  access_secret: aaa
  refresh_secret: bbb
admin_email: admin@scts.example.com
`))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://api.scts.example.com", cfg.BaseURL, "trailing slash stripped")
	assert.Equal(t, "aaa", cfg.JWT.AccessSecret)
	assert.Equal(t, "bbb", cfg.JWT.RefreshSecret)
	assert.Contains(t, cfg.Database.DSNValue(), "db.internal")
	assert.Contains(t, cfg.Database.DSNValue(), "scts_prod")
}

func TestLoadLegacySingleJWTSecret(t *testing.T) {
	cfg, err := Load(writeConfig(t, "jwt_secret: shared\n"))
	require.NoError(t, err)
	assert.Equal(t, "shared", cfg.JWT.AccessSecret)
	assert.Equal(t, "shared", cfg.JWT.RefreshSecret)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := Load(writeConfig(t, "port: 99999\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "env: staging\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "base_url: not-a-url\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "unknown_key: true\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
