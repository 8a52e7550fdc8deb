package config

import (
	"errors"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port               string
	ReadTimeout        int
	WriteTimeout       int
	CORSAllowedOrigins []string
}

// DatabaseConfig holds PostgreSQL connection settings. URL wins over the
// individual fields when set.
type DatabaseConfig struct {
	URL         string
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool
}

type JWTConfig struct {
	Secret        string
	ExpireMinutes int
}

type LogConfig struct {
	Level string
}

func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.ExpireMinutes) * time.Minute
}

// Load reads configuration from the environment, after loading .env when
// one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			ReadTimeout:        getEnvInt("READ_TIMEOUT_SEC", 15),
			WriteTimeout:       getEnvInt("WRITE_TIMEOUT_SEC", 15),
			CORSAllowedOrigins: splitTrim(getEnv("CORS_ALLOWED_ORIGINS", "*"), ","),
		},
		Database: DatabaseConfig{
			URL:         os.Getenv("DATABASE_URL"),
			Host:        getEnv("POSTGRES_HOST", "localhost"),
			Port:        getEnv("POSTGRES_PORT", "5432"),
			User:        getEnv("POSTGRES_USER", "postgres"),
			Password:    getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:      getEnv("POSTGRES_DB", "quickpoll"),
			SSLMode:     getEnv("POSTGRES_SSLMODE", "disable"),
			AutoMigrate: getEnvBool("AUTO_MIGRATE", true),
		},
		JWT: JWTConfig{
			Secret:        os.Getenv("JWT_SECRET"),
			ExpireMinutes: getEnvInt("JWT_EXPIRE_MINUTES", 60),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.JWT.ExpireMinutes <= 0 {
		cfg.JWT.ExpireMinutes = 60
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func splitTrim(s, sep string) []string {
	var out []string
	for _, v := range strings.Split(s, sep) {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
