package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// App holds the runtime configuration. Values come from an optional YAML
// file named by PORTAL_CONFIG, then environment variables, which win.
// AllowedOrigins lists the browser origins that may send the session cookie.
type App struct {
	Env             string        `yaml:"env"`
	HTTPPort        string        `yaml:"http_port"`
	BackendURL      string        `yaml:"backend_url"`
	SessionBackend  string        `yaml:"session_backend"`
	RedisAddr       string        `yaml:"redis_addr"`
	SessionTTL      time.Duration `yaml:"session_ttl"`
	JWTIssuer       string        `yaml:"jwt_issuer"`
	JWTSigningKey   string        `yaml:"jwt_signing_key"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min"`
	LogLevel        string        `yaml:"log_level"`
	CookieSecure    bool          `yaml:"cookie_secure"`
	ChartRadius     float64       `yaml:"chart_radius"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

func defaults() App {
	return App{
		Env:             "dev",
		HTTPPort:        "8081",
		BackendURL:      "http://localhost:5000/api",
		SessionBackend:  "memory",
		RedisAddr:       "localhost:6379",
		SessionTTL:      24 * time.Hour,
		JWTIssuer:       "internhub-portal",
		JWTSigningKey:   "dev-signing-secret-change",
		RateLimitPerMin: 120,
		LogLevel:        "",
		CookieSecure:    false,
		ChartRadius:     40,
		AllowedOrigins:  []string{"http://localhost:5173"},
	}
}

// Load returns configuration from PORTAL_CONFIG (if set) and the environment.
func Load() App {
	base := defaults()
	if path := os.Getenv("PORTAL_CONFIG"); path != "" {
		fromFile, err := LoadFile(path, base)
		if err != nil {
			log.Printf("config file %s ignored: %v", path, err)
		} else {
			base = fromFile
		}
	}
	return fromEnv(base)
}

// LoadFile overlays the YAML file at path on base.
func LoadFile(path string, base App) (App, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg := base
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return base, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func fromEnv(base App) App {
	return App{
		Env:             getEnv("APP_ENV", base.Env),
		HTTPPort:        getEnv("HTTP_PORT", base.HTTPPort),
		BackendURL:      getEnv("BACKEND_URL", base.BackendURL),
		SessionBackend:  getEnv("SESSION_BACKEND", base.SessionBackend),
		RedisAddr:       getEnv("REDIS_ADDR", base.RedisAddr),
		SessionTTL:      durationEnv("SESSION_TTL", base.SessionTTL),
		JWTIssuer:       getEnv("JWT_ISSUER", base.JWTIssuer),
		JWTSigningKey:   getEnv("JWT_SIGNING_KEY", base.JWTSigningKey),
		RateLimitPerMin: intEnv("RATE_LIMIT_PER_MIN", base.RateLimitPerMin),
		LogLevel:        getEnv("LOG_LEVEL", base.LogLevel),
		CookieSecure:    boolEnv("COOKIE_SECURE", base.CookieSecure),
		ChartRadius:     floatEnv("CHART_RADIUS", base.ChartRadius),
		AllowedOrigins:  listEnv("ALLOWED_ORIGINS", base.AllowedOrigins),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// listEnv reads a comma-separated list; blank items are dropped.
func listEnv(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using fallback %s", key, err, fallback)
			return fallback
		}
		return d
	}
	return fallback
}

func boolEnv(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if val == "1" || val == "true" || val == "TRUE" {
			return true
		}
		if val == "0" || val == "false" || val == "FALSE" {
			return false
		}
		log.Printf("invalid bool for %s, using fallback %v", key, fallback)
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var parsed int
		if _, err := fmt.Sscanf(val, "%d", &parsed); err == nil {
			return parsed
		}
		log.Printf("invalid int for %s, using fallback %d", key, fallback)
	}
	return fallback
}

func floatEnv(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		var parsed float64
		if _, err := fmt.Sscanf(val, "%g", &parsed); err == nil && parsed > 0 {
			return parsed
		}
		log.Printf("invalid float for %s, using fallback %g", key, fallback)
	}
	return fallback
}
