package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Verify defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Parse.MaxFileSize != 104857600 {
		t.Errorf("Parse.MaxFileSize = %d, want %d", cfg.Parse.MaxFileSize, 104857600)
	}
	if cfg.Parse.MaxFiles != 16 {
		t.Errorf("Parse.MaxFiles = %d, want %d", cfg.Parse.MaxFiles, 16)
	}
	if cfg.Parse.Timeout != 2*time.Minute {
		t.Errorf("Parse.Timeout = %v, want %v", cfg.Parse.Timeout, 2*time.Minute)
	}
	// The parse endpoint responds synchronously, so the write timeout must
	// leave room for a full parse budget.
	if cfg.Server.WriteTimeout <= cfg.Parse.Timeout {
		t.Errorf("Server.WriteTimeout = %v, must exceed Parse.Timeout %v", cfg.Server.WriteTimeout, cfg.Parse.Timeout)
	}
	if cfg.Rate.RequestsPerMinute != 100 {
		t.Errorf("Rate.RequestsPerMinute = %d, want %d", cfg.Rate.RequestsPerMinute, 100)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("PARSE_MAX_FILES", "4")
	os.Setenv("LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("PARSE_MAX_FILES")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Parse.MaxFiles != 4 {
		t.Errorf("Parse.MaxFiles = %d, want %d", cfg.Parse.MaxFiles, 4)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_Duration(t *testing.T) {
	os.Setenv("SERVER_READ_TIMEOUT", "45s")
	os.Setenv("PARSE_TIMEOUT", "1m30s")
	defer func() {
		os.Unsetenv("SERVER_READ_TIMEOUT")
		os.Unsetenv("PARSE_TIMEOUT")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 45*time.Second)
	}
	if cfg.Parse.Timeout != 90*time.Second {
		t.Errorf("Parse.Timeout = %v, want %v", cfg.Parse.Timeout, 90*time.Second)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	os.Setenv("PARSE_TIMEOUT", "soon")
	defer os.Unsetenv("PARSE_TIMEOUT")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for invalid duration")
	}
}

func TestLoad_CommaSeparatedSlice(t *testing.T) {
	os.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 172.16.0.0/12 , 192.168.0.0/16")
	defer os.Unsetenv("TRUSTED_PROXIES")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	expected := []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}
	if len(cfg.Security.TrustedProxies) != len(expected) {
		t.Fatalf("TrustedProxies length = %d, want %d", len(cfg.Security.TrustedProxies), len(expected))
	}
	for i, v := range expected {
		if cfg.Security.TrustedProxies[i] != v {
			t.Errorf("TrustedProxies[%d] = %q, want %q", i, cfg.Security.TrustedProxies[i], v)
		}
	}
}

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: 8080, ShutdownTimeout: time.Second},
		Parse:   ParseConfig{MaxFileSize: 1, MaxFiles: 1, Timeout: time.Minute},
		Rate:    RateLimitConfig{Enabled: true, RequestsPerMinute: 100},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 99999

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for invalid port")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("error should mention SERVER_PORT: %v", err)
	}
}

func TestValidate_InvalidParseTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Parse.Timeout = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for zero parse timeout")
	}
	if !strings.Contains(err.Error(), "PARSE_TIMEOUT") {
		t.Errorf("error should mention PARSE_TIMEOUT: %v", err)
	}
}

func TestValidate_WriteTimeoutBelowParseTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Server.WriteTimeout = 30 * time.Second
	cfg.Parse.Timeout = time.Minute

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for write timeout below parse timeout")
	}
	if !strings.Contains(err.Error(), "SERVER_WRITE_TIMEOUT") {
		t.Errorf("error should mention SERVER_WRITE_TIMEOUT: %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for invalid log level")
	}
	if !strings.Contains(err.Error(), "LOG_LEVEL") {
		t.Errorf("error should mention LOG_LEVEL: %v", err)
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"", 8080, ":8080"},
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"127.0.0.1", 3000, "127.0.0.1:3000"},
		{"localhost", 443, "localhost:443"},
	}

	for _, tt := range tests {
		cfg := &ServerConfig{Host: tt.host, Port: tt.port}
		got := cfg.Addr()
		if got != tt.want {
			t.Errorf("Addr() with host=%q, port=%d = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}
