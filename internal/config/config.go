package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Toast   ToastConfig
	Session SessionConfig
}

type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DataConfig struct {
	Dir             string `env:"DATA_DIR" envDefault:"data"`
	UsersFile       string `env:"USERS_FILE" envDefault:"users.json"`
	SeedDemoBooking bool   `env:"SEED_DEMO_BOOKING" envDefault:"true"`
}

// UsersPath is the flat file holding every registered user record.
func (c DataConfig) UsersPath() string {
	if filepath.IsAbs(c.UsersFile) {
		return c.UsersFile
	}
	return filepath.Join(c.Dir, c.UsersFile)
}

type ToastConfig struct {
	TTL           time.Duration `env:"TOAST_TTL" envDefault:"3s"`
	SweepInterval time.Duration `env:"TOAST_SWEEP_INTERVAL" envDefault:"250ms"`
}

type SessionConfig struct {
	JWTSecret string        `env:"JWT_SECRET" envDefault:"super-secret-key"`
	JWTExpiry time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
