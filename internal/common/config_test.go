package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"GRPC_ADDR", "TESSERACT_BIN", "OCR_LANG", "OCR_PSM", "VERIFY_API_TIMEOUT", "HISTORY_DB_PATH"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, "tesseract", cfg.OCR.Tesseract)
	assert.Equal(t, "kor+eng", cfg.OCR.Language)
	assert.Equal(t, 6, cfg.OCR.PSM)
	assert.Equal(t, 15*time.Second, cfg.Verifier.Timeout)
	assert.Equal(t, "./greenmap-verify.db", cfg.History.SQLitePath)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/greenmap")
	t.Setenv("GRPC_ADDR", ":9090")
	t.Setenv("OCR_PSM", "4")
	t.Setenv("VERIFY_API_URL", "https://verify.example.com")
	t.Setenv("VERIFY_API_TIMEOUT", "5s")

	cfg := LoadConfig()
	assert.Equal(t, "postgres://localhost/greenmap", cfg.Database.DSN)
	assert.Equal(t, ":9090", cfg.Server.GRPCAddr)
	assert.Equal(t, 4, cfg.OCR.PSM)
	assert.Equal(t, 5*time.Second, cfg.Verifier.Timeout)
}

func TestLoadConfigIgnoresMalformedInts(t *testing.T) {
	t.Setenv("OCR_PSM", "not-a-number")
	cfg := LoadConfig()
	assert.Equal(t, 6, cfg.OCR.PSM)
}

func TestValidate(t *testing.T) {
	valid := &Config{
		Database: DatabaseConfig{DSN: "postgres://localhost/greenmap"},
		Server:   ServerConfig{GRPCAddr: ":8080"},
		Verifier: VerifierConfig{BaseURL: "https://verify.example.com"},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing dsn", func(c *Config) { c.Database.DSN = "" }, "DB_URL"},
		{"missing grpc addr", func(c *Config) { c.Server.GRPCAddr = "" }, "GRPC_ADDR"},
		{"missing verify url", func(c *Config) { c.Verifier.BaseURL = "" }, "VERIFY_API_URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
