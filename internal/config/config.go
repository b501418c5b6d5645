package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config se construye una sola vez en main y se pasa explícitamente (router, auth).
type Config struct {
	Addr string `yaml:"addr"`

	// DBDSN vacío => stores en memoria (modo dev).
	DBDSN string `yaml:"db_dsn"`

	JWTSecret string `yaml:"jwt_secret"`
	// JWTSecretGenerated indica que no vino secreto y se generó uno aleatorio por proceso.
	JWTSecretGenerated bool `yaml:"-"`

	BcryptCost        int  `yaml:"bcrypt_cost"`
	AllowRegistration bool `yaml:"allow_registration"`

	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
	RateLimitBurst     int `yaml:"rate_limit_burst"`

	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	AppName   string `yaml:"app_name"`
}

func defaults() *Config {
	return &Config{
		Addr:               ":8080",
		BcryptCost:         10,
		AllowRegistration:  true,
		CORSAllowedOrigins: []string{"*"},
		RateLimitPerMinute: 20,
		RateLimitBurst:     5,
		ReadTimeout:        5 * time.Second,
		WriteTimeout:       10 * time.Second,
		ShutdownTimeout:    15 * time.Second,
		LogLevel:           "info",
		LogFormat:          "text",
		AppName:            "pet-adoption",
	}
}

// Load arma la config en capas: defaults -> YAML (path o CONFIG_FILE) -> .env -> env vars.
func Load(path string) (*Config, error) {
	// .env es opcional
	_ = godotenv.Load()

	cfg := defaults()

	if strings.TrimSpace(path) == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.JWTSecret) == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("config: generate jwt secret: %w", err)
		}
		cfg.JWTSecret = secret
		cfg.JWTSecretGenerated = true
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + strings.TrimPrefix(v, ":")
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.DBDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORSAllowedOrigins = splitCSV(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("APP_NAME"); v != "" {
		cfg.AppName = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"BCRYPT_COST", &cfg.BcryptCost},
		{"RATE_LIMIT_PER_MINUTE", &cfg.RateLimitPerMinute},
		{"RATE_LIMIT_BURST", &cfg.RateLimitBurst},
	}
	for _, it := range ints {
		v := strings.TrimSpace(os.Getenv(it.key))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s must be an integer: %w", it.key, err)
		}
		*it.dst = n
	}

	if v := strings.TrimSpace(os.Getenv("ALLOW_REGISTRATION")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: ALLOW_REGISTRATION must be a boolean: %w", err)
		}
		cfg.AllowRegistration = b
	}
	return nil
}

func (c *Config) validate() error {
	// mismos límites que bcrypt (MinCost=4, MaxCost=31)
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("config: bcrypt_cost must be between 4 and 31, got %d", c.BcryptCost)
	}
	if c.RateLimitPerMinute < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("config: rate limits must not be negative")
	}
	return nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
