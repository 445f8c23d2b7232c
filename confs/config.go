package confs

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	devSessionSecret = "securebank-dev-secret-change-me"
	EnvDevelopment   = "development"
)

// Config holds every runtime setting of the portal.
type Config struct {
	// Env is "development" unless PORTAL_ENV says otherwise.
	Env  string
	Addr string

	AuthAPIURL      string
	CustomerAPIURL  string
	AccountAPIURL   string
	EmployeeAPIURL  string
	UpstreamTimeout time.Duration

	// SessionStore is "postgres" or "memory".
	SessionStore    string
	SessionSecret   string
	SessionTTL      time.Duration
	CookieSecure    bool
	NotificationTTL time.Duration
	SweepInterval   time.Duration
	PageSize        int
	CORSOrigins     []string
}

// LoadConfig loads environment variables from a .env file if present
// and builds the portal configuration from them.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("could not load .env", "error", err)
		}
	}

	cfg := &Config{
		Env:            strings.ToLower(getenv("PORTAL_ENV", EnvDevelopment)),
		Addr:           getenv("PORTAL_ADDR", "0.0.0.0:4200"),
		AuthAPIURL:     strings.TrimRight(getenv("AUTH_API_URL", "http://localhost:8084/api/auth"), "/"),
		CustomerAPIURL: strings.TrimRight(getenv("CUSTOMER_API_URL", "http://localhost:8082/api/customers"), "/"),
		AccountAPIURL:  strings.TrimRight(getenv("ACCOUNT_API_URL", "http://localhost:8083/api/accounts"), "/"),
		EmployeeAPIURL: strings.TrimRight(getenv("EMPLOYEE_API_URL", "http://localhost:8081/api/employees"), "/"),
		SessionStore:   strings.ToLower(getenv("SESSION_STORE", "postgres")),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
	}
	if cfg.SessionStore != "postgres" && cfg.SessionStore != "memory" {
		return nil, fmt.Errorf("invalid SESSION_STORE %q: want postgres or memory", cfg.SessionStore)
	}

	var err error
	if cfg.UpstreamTimeout, err = durationEnv("UPSTREAM_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 8*time.Hour); err != nil {
		return nil, err
	}
	if cfg.NotificationTTL, err = durationEnv("NOTIFICATION_TTL", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = durationEnv("SWEEP_INTERVAL", time.Minute); err != nil {
		return nil, err
	}
	if cfg.PageSize, err = intEnv("PAGE_SIZE", 8); err != nil {
		return nil, err
	}
	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	if cfg.CookieSecure, err = boolEnv("COOKIE_SECURE", false); err != nil {
		return nil, err
	}

	for _, origin := range strings.Split(getenv("CORS_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if cfg.SessionSecret == "" {
		if cfg.Env != EnvDevelopment {
			return nil, fmt.Errorf("SESSION_SECRET is required when PORTAL_ENV is %q", cfg.Env)
		}
		slog.Warn("SESSION_SECRET not set, using development secret")
		cfg.SessionSecret = devSessionSecret
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
