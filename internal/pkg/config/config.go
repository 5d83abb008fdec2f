package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	Admin AdminConfig
}

// AdminConfig describes the single administrator account seeded at startup.
// The password is the only credential the system ever checks; every other
// account authenticates by email alone.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=administrador@SOS.cl"`
	Name     string `env:"ADMIN_NAME,     default=Administrador"`
	Password string `env:"ADMIN_PASSWORD, default=Otaku21513656"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
