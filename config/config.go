package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingSecret = errors.New("JWT_SECRET is required")

type Config struct {
	Port              string        `mapstructure:"PORT"`
	Env               string        `mapstructure:"ENV"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	MongoURI          string        `mapstructure:"MONGO_URI"`
	MongoDB           string        `mapstructure:"MONGO_DB"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	TokenTTL          time.Duration `mapstructure:"TOKEN_TTL"`
	RedisAddr         string        `mapstructure:"REDIS_ADDR"`
	RedisPassword     string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB           int           `mapstructure:"REDIS_DB"`
	HospitalCacheTTL  time.Duration `mapstructure:"HOSPITAL_CACHE_TTL"`
	CORSOrigins       []string      `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS      float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst    int           `mapstructure:"RATE_LIMIT_BURST"`
	Argon2MemoryKB    uint32        `mapstructure:"ARGON2_MEMORY_KB"`
	Argon2Iterations  uint32        `mapstructure:"ARGON2_ITERATIONS"`
	Argon2Parallelism uint8         `mapstructure:"ARGON2_PARALLELISM"`
	JobsEnabled       bool          `mapstructure:"JOBS_ENABLED"`
	MigrationsEnabled bool          `mapstructure:"MIGRATIONS_ENABLED"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL", "MONGO_URI", "MONGO_DB", "JWT_SECRET", "TOKEN_TTL",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "HOSPITAL_CACHE_TTL", "CORS_ORIGINS",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "ARGON2_MEMORY_KB", "ARGON2_ITERATIONS",
	"ARGON2_PARALLELISM", "JOBS_ENABLED", "MIGRATIONS_ENABLED",
}

/*
* Load the .env file if present, then read everything from the environment
* JWT_SECRET is the only value without a default; missing it is fatal
 */
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "ehealth")
	v.SetDefault("TOKEN_TTL", "480m")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("HOSPITAL_CACHE_TTL", "1h")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("ARGON2_MEMORY_KB", 64*1024)
	v.SetDefault("ARGON2_ITERATIONS", 3)
	v.SetDefault("ARGON2_PARALLELISM", 4)
	v.SetDefault("JOBS_ENABLED", true)
	v.SetDefault("MIGRATIONS_ENABLED", true)

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(cfg.CORSOrigins) == 1 && strings.Contains(cfg.CORSOrigins[0], ",") {
		cfg.CORSOrigins = strings.Split(cfg.CORSOrigins[0], ",")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return ErrMissingSecret
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.MongoURI == "" {
		return errors.New("MONGO_URI is required")
	}
	if c.Argon2MemoryKB == 0 || c.Argon2Iterations == 0 || c.Argon2Parallelism == 0 {
		return errors.New("argon2 parameters must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}
