package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

var keys = []string{
	"GEMINI_API_KEY", "GEMINI_API_BASE_URL", "AITUTOR_MODEL", "ENVIRONMENT",
	"AITUTOR_LOG_LEVEL", "LOG_LEVEL", "AITUTOR_MAX_RESPONSE_TOKENS", "AITUTOR_TEMPERATURE",
	"AITUTOR_GENERATE_TIMEOUT", "AITUTOR_MAX_RETRIES", "AITUTOR_HTTP_ADDR", "AITUTOR_ALLOWED_ORIGINS",
	"AITUTOR_LLM_LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestFromEnv_Defaults verifies every default.
func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := FromEnv(discard())

	want := Config{
		Model:             DefaultModel,
		Environment:       DefaultEnvironment,
		LogLevel:          slog.LevelInfo,
		LLMLogLevel:       DefaultLLMLogLevel,
		MaxResponseTokens: DefaultMaxResponseTokens,
		Temperature:       DefaultTemperature,
		GenerateTimeout:   DefaultGenerateTimeout,
		HTTPAddr:          DefaultHTTPAddr,
		AllowedOrigins:    DefaultAllowedOrigins,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("FromEnv = %+v\nwant %+v", cfg, want)
	}
	if cfg.HasAPIKey() || cfg.IsProduction() {
		t.Error("defaults must have no key and not be production")
	}
}

// TestFromEnv_Values verifies parsing of set variables.
func TestFromEnv_Values(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", " secret ")
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("AITUTOR_MAX_RESPONSE_TOKENS", "2048")
	t.Setenv("AITUTOR_TEMPERATURE", "0.2")
	t.Setenv("AITUTOR_GENERATE_TIMEOUT", "5s")
	t.Setenv("AITUTOR_MAX_RETRIES", "3")
	t.Setenv("AITUTOR_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("AITUTOR_LLM_LOG_LEVEL", "Verbose")

	cfg := FromEnv(discard())
	if cfg.GeminiAPIKey != "secret" || !cfg.HasAPIKey() {
		t.Errorf("GeminiAPIKey = %q", cfg.GeminiAPIKey)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction = false")
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.MaxResponseTokens != 2048 || cfg.Temperature != 0.2 || cfg.GenerateTimeout != 5*time.Second || cfg.MaxRetries != 3 {
		t.Errorf("numbers = %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.LLMLogLevel != "verbose" {
		t.Errorf("LLMLogLevel = %q, want verbose", cfg.LLMLogLevel)
	}
}

// TestFromEnv_InvalidFallsBack verifies malformed values are replaced and logged.
func TestFromEnv_InvalidFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("AITUTOR_MAX_RESPONSE_TOKENS", "lots")
	t.Setenv("AITUTOR_TEMPERATURE", "7")
	t.Setenv("AITUTOR_GENERATE_TIMEOUT", "-1s")
	t.Setenv("AITUTOR_MAX_RETRIES", "-2")
	t.Setenv("AITUTOR_LLM_LOG_LEVEL", "chatty")

	var buf bytes.Buffer
	cfg := FromEnv(slog.New(slog.NewTextHandler(&buf, nil)))

	if cfg.MaxResponseTokens != DefaultMaxResponseTokens || cfg.Temperature != DefaultTemperature ||
		cfg.GenerateTimeout != DefaultGenerateTimeout || cfg.MaxRetries != 0 || cfg.LLMLogLevel != DefaultLLMLogLevel {
		t.Errorf("cfg = %+v", cfg)
	}
	if got := strings.Count(buf.String(), "level=WARN"); got != 5 {
		t.Errorf("got %d warnings, want 5:\n%s", got, buf.String())
	}
}

// TestLogLevelFromEnv verifies precedence and parsing.
func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		primary string
		legacy  string
		want    slog.Level
	}{
		{"unset", "", "", slog.LevelInfo},
		{"legacy only", "", "error", slog.LevelError},
		{"primary wins", "WARNING", "error", slog.LevelWarn},
		{"unknown", "verbose", "", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AITUTOR_LOG_LEVEL", tt.primary)
			t.Setenv("LOG_LEVEL", tt.legacy)
			if got := LogLevelFromEnv(); got != tt.want {
				t.Errorf("LogLevelFromEnv = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestParseLogLevel_Unknown verifies the error for unknown names.
func TestParseLogLevel_Unknown(t *testing.T) {
	level, err := ParseLogLevel("loud")
	if err == nil || level != slog.LevelInfo {
		t.Errorf("ParseLogLevel = %v, %v", level, err)
	}
}

// TestLoadEnv verifies .env seeding, precedence of the real environment and
// tolerance of a missing file.
func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	content := "AITUTOR_TEST_FROM_FILE=file\nAITUTOR_TEST_OVERRIDE=file\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AITUTOR_TEST_OVERRIDE", "process")
	t.Cleanup(func() { os.Unsetenv("AITUTOR_TEST_FROM_FILE") })

	if err := LoadEnv(file); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if got := os.Getenv("AITUTOR_TEST_FROM_FILE"); got != "file" {
		t.Errorf("AITUTOR_TEST_FROM_FILE = %q", got)
	}
	if got := os.Getenv("AITUTOR_TEST_OVERRIDE"); got != "process" {
		t.Errorf("AITUTOR_TEST_OVERRIDE = %q, want the process value", got)
	}
	if err := LoadEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing file: %v", err)
	}
}

// TestNewLogger verifies the handler format per environment.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(Config{Environment: "production"}, &buf).Info("hello")
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"service":"aitutor"`) {
		t.Errorf("production output = %s", buf.String())
	}

	buf.Reset()
	NewLogger(Config{Environment: "development", LogLevel: slog.LevelWarn}, &buf).Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at WARN, got %s", buf.String())
	}
}
