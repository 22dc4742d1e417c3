// Package config provides configuration loading and validation for the
// extraction service and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds the runtime settings for the server and CLI. Values come
// from a JSON file when one is given, then environment variables, then
// defaults; later sources win only where earlier ones are unset.
type Config struct {
	// Server
	Port            int   `json:"port,omitempty" validate:"min=1,max=65535"`           // HTTP listen port
	ShutdownSeconds int   `json:"shutdown_seconds,omitempty" validate:"min=1,max=300"` // Graceful shutdown grace period
	MaxUploadBytes  int64 `json:"max_upload_bytes,omitempty" validate:"min=1024"`      // Upload size cap for multipart bodies

	// Parsing
	AllowedExtensions []string `json:"allowed_extensions,omitempty" validate:"min=1,dive,oneof=pdf docx doc txt"` // Accepted upload extensions
	VocabularyPath    string   `json:"vocabulary_path,omitempty"`                                                 // Skills reference file; empty uses the built-in list

	// Observability
	LogLevel string `json:"log_level,omitempty" validate:"oneof=trace debug info warn error"` // zerolog level name
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Port:              8000,
		ShutdownSeconds:   15,
		MaxUploadBytes:    10 << 20,
		AllowedExtensions: []string{"pdf", "docx", "doc", "txt"},
		LogLevel:          "info",
	}
}

// Load builds the effective configuration: defaults, overlaid by the JSON
// file at path when non-empty, overlaid by environment variables, then
// validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		cfg.merge(*fileCfg)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(path string) (*Config, error) {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// merge overlays non-zero fields from other onto c.
func (c *Config) merge(other Config) {
	if other.Port != 0 {
		c.Port = other.Port
	}
	if other.ShutdownSeconds != 0 {
		c.ShutdownSeconds = other.ShutdownSeconds
	}
	if other.MaxUploadBytes != 0 {
		c.MaxUploadBytes = other.MaxUploadBytes
	}
	if len(other.AllowedExtensions) > 0 {
		c.AllowedExtensions = other.AllowedExtensions
	}
	if other.VocabularyPath != "" {
		c.VocabularyPath = other.VocabularyPath
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

// applyEnv overlays RESUME_EXTRACTOR_* environment variables. Invalid
// numeric values are ignored rather than failing startup; validation
// still catches out-of-range results.
func (c *Config) applyEnv() {
	if v := os.Getenv("RESUME_EXTRACTOR_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Port = n
		}
	}
	if v := os.Getenv("RESUME_EXTRACTOR_MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("RESUME_EXTRACTOR_VOCABULARY_PATH"); v != "" {
		c.VocabularyPath = v
	}
	if v := os.Getenv("RESUME_EXTRACTOR_LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}

// Validate checks field ranges via struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// ExtensionAllowed reports whether the given file extension (with or
// without leading dot) is accepted for upload.
func (c *Config) ExtensionAllowed(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, allowed := range c.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
