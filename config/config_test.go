package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.ChunkSize != 5000 {
		t.Errorf("ChunkSize = %d, want 5000", cfg.ChunkSize)
	}
	if cfg.MaxChunks != 5 {
		t.Errorf("MaxChunks = %d, want 5", cfg.MaxChunks)
	}
	if cfg.Proxy.Enabled {
		t.Error("Proxy.Enabled = true, want false by default")
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CHUNK_SIZE", "100")
	t.Setenv("MAX_CHUNKS", "3")
	t.Setenv("READ_TIMEOUT", "5s")
	t.Setenv("USE_PROXY", "1")
	t.Setenv("API_KEY", "secret")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want 9090", cfg.ServerPort)
	}
	if cfg.ChunkSize != 100 {
		t.Errorf("ChunkSize = %d, want 100", cfg.ChunkSize)
	}
	if cfg.MaxChunks != 3 {
		t.Errorf("MaxChunks = %d, want 3", cfg.MaxChunks)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.ReadTimeout)
	}
	if !cfg.Proxy.Enabled {
		t.Error("Proxy.Enabled = false, want true")
	}
	if cfg.APIKey != "secret" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("CHUNK_SIZE", "not-a-number")
	t.Setenv("READ_TIMEOUT", "soon")

	cfg := Load()

	if cfg.ChunkSize != 5000 {
		t.Errorf("ChunkSize = %d, want default 5000", cfg.ChunkSize)
	}
	if cfg.ReadTimeout != 15*time.Second {
		t.Errorf("ReadTimeout = %v, want default 15s", cfg.ReadTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.ServerPort = "" }},
		{"zero read timeout", func(c *Config) { c.ReadTimeout = 0 }},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }},
		{"negative max chunks", func(c *Config) { c.MaxChunks = -1 }},
		{"rate limit enabled with zero rpm", func(c *Config) { c.RateLimit.RequestsPerMinute = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
