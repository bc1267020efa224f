package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string `env:"SERVER_PORT, default=8080"`
	SwaggerHost string `env:"SWAGGER_HOST"`
	ResetDB     bool   `env:"RESET_DB, default=false"`
	CORSOrigins string `env:"CORS_ORIGINS, default=*"`

	DB    DBConfig
	Redis RedisConfig
	Auth  AuthConfig
	Log   LogConfig
	Jobs  JobsConfig
	Seed  SeedConfig
}

// DBConfig selects the gorm dialect and connection settings.
type DBConfig struct {
	Driver       string `env:"DB_DRIVER, default=mysql"`
	DSN          string `env:"DATABASE_URL, default=user:password@tcp(localhost:3306)/carwash?charset=utf8mb4&parseTime=True&loc=Local"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS, default=25"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS, default=10"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// AuthConfig covers token signing and login throttling.
type AuthConfig struct {
	JWTSecret       string        `env:"JWT_SECRET, default=change-me"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL, default=15m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL, default=168h"`
	LoginRatePerSec float64       `env:"LOGIN_RATE_PER_SEC, default=1"`
	LoginBurst      int           `env:"LOGIN_BURST, default=5"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL, default=info"`
	Pretty bool   `env:"LOG_PRETTY, default=false"`
}

type JobsConfig struct {
	TokenPurgeSchedule string `env:"TOKEN_PURGE_SCHEDULE, default=@every 1h"`
}

// SeedConfig describes the first administrator created by cmd/seed.
type SeedConfig struct {
	AdminEmail    string `env:"SEED_ADMIN_EMAIL, default=admin@carwash.local"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD"`
	AdminCedula   int64  `env:"SEED_ADMIN_CEDULA, default=1"`
}

// Load reads an optional .env file and then builds Config from the environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load for entry points that cannot continue without configuration.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch strings.ToLower(c.DB.Driver) {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("config: token TTLs must be positive")
	}
	return nil
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
