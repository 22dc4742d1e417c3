package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"pdf", "docx", "doc", "txt"}, cfg.AllowedExtensions)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9090, "log_level": "debug"}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched fields keep defaults.
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9090}`), 0o644))
	t.Setenv("RESUME_EXTRACTOR_PORT", "7070")
	t.Setenv("RESUME_EXTRACTOR_LOG_LEVEL", "WARN")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "port out of range", body: `{"port": 99999}`},
		{name: "unknown log level", body: `{"log_level": "loud"}`},
		{name: "unknown extension", body: `{"allowed_extensions": ["exe"]}`},
		{name: "upload cap too small", body: `{"max_upload_bytes": 10}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestExtensionAllowed(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.ExtensionAllowed(".pdf"))
	assert.True(t, cfg.ExtensionAllowed("PDF"))
	assert.True(t, cfg.ExtensionAllowed("docx"))
	assert.False(t, cfg.ExtensionAllowed(".exe"))
	assert.False(t, cfg.ExtensionAllowed(""))
}
