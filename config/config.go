package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
)

const (
	DefaultDBHost          = "localhost"
	DefaultDBPort          = 5432
	DefaultDBUser          = "postgres"
	DefaultDBPassword      = "postgres"
	DefaultDBName          = "movies-db"
	DefaultDBMaxConns      = 10
	DefaultPort            = 3000
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultEnvFile         = ".env"
)

var logLevels = []string{"debug", "info", "warn", "error"}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	URL      string // Overrides the fields above when set.
	MaxConns int
}

type RateLimitConfig struct {
	RPS   float64 // Zero disables the limiter.
	Burst int
}

type Config struct {
	DB              DBConfig
	Port            int
	LogLevel        string
	LogDevelopment  bool
	RateLimit       RateLimitConfig
	ShutdownTimeout time.Duration

	// Warnings lists values that were ignored in favour of a default.
	Warnings []string
}

// Load reads configuration from the env file, the environment and args, in
// increasing order of precedence.
func Load(args []string) (*Config, error) {
	const op = "config.Load"

	flags := pflag.NewFlagSet("actors-movies-api", pflag.ContinueOnError)
	envFile := flags.String("env-file", DefaultEnvFile, "Path to a .env file loaded before reading the environment")
	port := flags.Int("port", DefaultPort, "HTTP listen port")
	databaseURL := flags.String("database-url", "", "Postgres connection URL, overrides the DB_* variables")
	logLevel := flags.String("log-level", DefaultLogLevel, "Log level: debug, info, warn or error")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: loading %s: %w", op, *envFile, err)
	}

	cfg := &Config{}
	cfg.DB = DBConfig{
		Host:     getEnv("DB_HOST", DefaultDBHost),
		Port:     cfg.getEnvAsInt("DB_PORT", DefaultDBPort),
		User:     getEnv("DB_USER", DefaultDBUser),
		Password: getEnv("DB_PASSWORD", DefaultDBPassword),
		Name:     getEnv("DB_NAME", DefaultDBName),
		URL:      os.Getenv("DATABASE_URL"),
		MaxConns: cfg.getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
	}
	cfg.Port = cfg.getEnvAsInt("PORT", DefaultPort)
	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel))
	cfg.LogDevelopment = cfg.getEnvAsBool("LOG_DEVELOPMENT", false)
	cfg.RateLimit = RateLimitConfig{
		RPS:   cfg.getEnvAsFloat("RATE_LIMIT_RPS", 0),
		Burst: cfg.getEnvAsInt("RATE_LIMIT_BURST", 0),
	}
	cfg.ShutdownTimeout = cfg.getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout)

	if flags.Changed("port") {
		cfg.Port = *port
	}
	if flags.Changed("database-url") {
		cfg.DB.URL = *databaseURL
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(*logLevel)
	}

	if cfg.RateLimit.RPS > 0 && cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = max(1, int(cfg.RateLimit.RPS))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	if c.Port < 1 || c.Port > 65535 {
		err = multierr.Append(err, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.DB.URL == "" {
		if c.DB.Host == "" {
			err = multierr.Append(err, errors.New("database host is empty"))
		}
		if c.DB.Port < 1 || c.DB.Port > 65535 {
			err = multierr.Append(err, fmt.Errorf("database port %d out of range", c.DB.Port))
		}
		if c.DB.Name == "" {
			err = multierr.Append(err, errors.New("database name is empty"))
		}
	} else if _, parseErr := url.Parse(c.DB.URL); parseErr != nil {
		err = multierr.Append(err, fmt.Errorf("invalid database url: %w", parseErr))
	}
	if c.DB.MaxConns < 1 {
		err = multierr.Append(err, fmt.Errorf("database max conns %d must be positive", c.DB.MaxConns))
	}
	if !validLogLevel(c.LogLevel) {
		err = multierr.Append(err, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		err = multierr.Append(err, errors.New("rate limit values must not be negative"))
	}
	if c.ShutdownTimeout <= 0 {
		err = multierr.Append(err, fmt.Errorf("shutdown timeout %s must be positive", c.ShutdownTimeout))
	}
	return err
}

// GetDBConnectionString returns DATABASE_URL when set, otherwise a URL built
// from the individual DB_* settings.
func (c *Config) GetDBConnectionString() string {
	if c.DB.URL != "" {
		return c.DB.URL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DB.User, c.DB.Password),
		Host:   net.JoinHostPort(c.DB.Host, strconv.Itoa(c.DB.Port)),
		Path:   "/" + c.DB.Name,
	}
	return u.String()
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func validLogLevel(level string) bool {
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultValue
}

func (c *Config) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func (c *Config) getEnvAsInt(key string, defaultValue int) int {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strValue)
	if err != nil {
		c.warnf("invalid value %q for %s, using default %d", strValue, key, defaultValue)
		return defaultValue
	}
	return value
}

func (c *Config) getEnvAsFloat(key string, defaultValue float64) float64 {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(strValue, 64)
	if err != nil {
		c.warnf("invalid value %q for %s, using default %v", strValue, key, defaultValue)
		return defaultValue
	}
	return value
}

func (c *Config) getEnvAsBool(key string, defaultValue bool) bool {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(strValue)
	if err != nil {
		c.warnf("invalid value %q for %s, using default %t", strValue, key, defaultValue)
		return defaultValue
	}
	return value
}

func (c *Config) getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(strValue)
	if err != nil {
		c.warnf("invalid value %q for %s, using default %s", strValue, key, defaultValue)
		return defaultValue
	}
	return value
}
