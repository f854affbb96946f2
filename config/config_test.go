package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"DB_TYPE", "PORT", "BILL_PREFIX", "PDF_PREFIX", "DEFAULT_OWNER_ID", "JWT_TTL", "R2_BUCKET"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "mongo", cfg.DBType)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "SL", cfg.BillPrefix)
	assert.Equal(t, "SIDDESH_LOGISTICS", cfg.PDFPrefix)
	assert.Equal(t, "default", cfg.DefaultOwnerID)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.False(t, cfg.R2.Enabled())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("DB_TYPE", "memory")
	t.Setenv("BILL_PREFIX", "SDL")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("R2_ACCOUNT_ID", "acc")
	t.Setenv("R2_BUCKET", "bills")
	t.Setenv("R2_PUBLIC_URL", "https://files.example.com")

	cfg := LoadConfig()

	assert.Equal(t, "memory", cfg.DBType)
	assert.Equal(t, "SDL", cfg.BillPrefix)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.True(t, cfg.R2.Enabled())
}

func TestLoadConfig_BadTTLKeepsDefault(t *testing.T) {
	t.Setenv("JWT_TTL", "soon")
	assert.Equal(t, 24*time.Hour, LoadConfig().JWTTTL)
}
