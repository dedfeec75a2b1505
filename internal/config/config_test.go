package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, StorageBackendLocal, cfg.Storage.Backend)
	assert.Equal(t, 512, cfg.Logo.ThumbnailSize)
	assert.Equal(t, 80, cfg.Logo.Quality)
	assert.Empty(t, cfg.Accounts.SuperadminEmails)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("STORAGE_BACKEND", "minio")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("SUPERADMIN_EMAILS", "one@innopolis.university, two@innopolis.university,")
	t.Setenv("LOGO_WEBP_QUALITY", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, StorageBackendMinio, cfg.Storage.Backend)
	assert.True(t, cfg.Storage.Minio.UseSSL)
	require.Len(t, cfg.Accounts.SuperadminEmails, 2)
	assert.Equal(t, "one@innopolis.university", cfg.Accounts.SuperadminEmails[0])
	// unparsable numeric values fall back to the default
	assert.Equal(t, 80, cfg.Logo.Quality)
}

func TestDatabaseURL(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "db", Port: 5432, User: "app", Password: "secret", DBName: "clubs", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://app:secret@db:5432/clubs?sslmode=disable", cfg.URL())
}

func TestIsSuperadmin(t *testing.T) {
	cfg := AccountsConfig{SuperadminEmails: []string{"Boss@innopolis.university"}}

	assert.True(t, cfg.IsSuperadmin("boss@innopolis.university"), "matching is case-insensitive")
	assert.True(t, cfg.IsSuperadmin("Boss@innopolis.university"))
	assert.False(t, cfg.IsSuperadmin("someone@innopolis.university"))
	assert.False(t, cfg.IsSuperadmin(""))
}
