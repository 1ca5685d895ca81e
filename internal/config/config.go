package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults.
const (
	DefaultModel             = "gemini-2.0-flash"
	DefaultEnvironment       = "development"
	DefaultMaxResponseTokens = 1000
	DefaultTemperature       = 0.7
	DefaultGenerateTimeout   = 30 * time.Second
	DefaultHTTPAddr          = ":8000"
	DefaultLLMLogLevel       = "standard"
)

// LLMLogLevels are the accepted values of AITUTOR_LLM_LOG_LEVEL, the detail
// of the text generation call log.
var LLMLogLevels = []string{"minimal", "standard", "verbose"}

// DefaultAllowedOrigins are the frontend origins accepted by CORS.
var DefaultAllowedOrigins = []string{"http://localhost:3000", "https://*.vercel.app"}

// Config holds the process settings.
type Config struct {
	GeminiAPIKey      string
	GeminiBaseURL     string
	Model             string
	Environment       string
	LogLevel          slog.Level
	LLMLogLevel       string
	MaxResponseTokens int
	Temperature       float64
	GenerateTimeout   time.Duration
	// MaxRetries enables the retry middleware when positive.
	MaxRetries     int
	HTTPAddr       string
	AllowedOrigins []string
}

// IsProduction reports whether ENVIRONMENT is "production".
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// HasAPIKey reports whether a text generation key is configured.
func (c Config) HasAPIKey() bool {
	return c.GeminiAPIKey != ""
}

// LoadEnv seeds the environment from files (".env" when none are given).
// Variables already set win; a missing file is not an error.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Load runs [LoadEnv] and then [FromEnv]. A .env parse failure is logged.
func Load(logger *slog.Logger, files ...string) Config {
	if logger == nil {
		logger = slog.Default()
	}
	if err := LoadEnv(files...); err != nil {
		logger.Warn("could not load env file", slog.Any("error", err))
	}
	return FromEnv(logger)
}

// FromEnv reads the settings from the environment. Nil logger selects
// slog.Default().
func FromEnv(logger *slog.Logger) Config {
	if logger == nil {
		logger = slog.Default()
	}
	e := env{logger: logger}

	cfg := Config{
		GeminiAPIKey:      e.str("GEMINI_API_KEY", ""),
		GeminiBaseURL:     e.str("GEMINI_API_BASE_URL", ""),
		Model:             e.str("AITUTOR_MODEL", DefaultModel),
		Environment:       e.str("ENVIRONMENT", DefaultEnvironment),
		LogLevel:          LogLevelFromEnv(),
		LLMLogLevel:       e.oneOf("AITUTOR_LLM_LOG_LEVEL", LLMLogLevels, DefaultLLMLogLevel),
		MaxResponseTokens: e.positiveInt("AITUTOR_MAX_RESPONSE_TOKENS", DefaultMaxResponseTokens),
		Temperature:       e.float("AITUTOR_TEMPERATURE", DefaultTemperature),
		GenerateTimeout:   e.duration("AITUTOR_GENERATE_TIMEOUT", DefaultGenerateTimeout),
		MaxRetries:        e.positiveInt("AITUTOR_MAX_RETRIES", 0),
		HTTPAddr:          e.str("AITUTOR_HTTP_ADDR", DefaultHTTPAddr),
		AllowedOrigins:    e.csv("AITUTOR_ALLOWED_ORIGINS", DefaultAllowedOrigins),
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		logger.Warn("temperature out of range; using default",
			slog.Float64("value", cfg.Temperature), slog.Float64("default", DefaultTemperature))
		cfg.Temperature = DefaultTemperature
	}
	return cfg
}

// env reads variables, warning about and replacing malformed values.
type env struct {
	logger *slog.Logger
}

func (e env) lookup(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func (e env) invalid(key, value string, def any) {
	e.logger.Warn("invalid env value; using default",
		slog.String("key", key), slog.String("value", value), slog.Any("default", def))
}

func (e env) str(key, def string) string {
	if v := e.lookup(key); v != "" {
		return v
	}
	return def
}

// positiveInt accepts zero and positive integers.
func (e env) positiveInt(key string, def int) int {
	s := e.lookup(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		e.invalid(key, s, def)
		return def
	}
	return v
}

func (e env) float(key string, def float64) float64 {
	s := e.lookup(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		e.invalid(key, s, def)
		return def
	}
	return v
}

func (e env) duration(key string, def time.Duration) time.Duration {
	s := e.lookup(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		e.invalid(key, s, def.String())
		return def
	}
	return d
}

// oneOf accepts one of allowed, compared case-insensitively, and returns it
// lower-cased.
func (e env) oneOf(key string, allowed []string, def string) string {
	s := e.lookup(key)
	if s == "" {
		return def
	}
	v := strings.ToLower(s)
	if !slices.Contains(allowed, v) {
		e.invalid(key, s, def)
		return def
	}
	return v
}

func (e env) csv(key string, def []string) []string {
	s := e.lookup(key)
	if s == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
