package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config is the full application configuration, populated from environment
// variables (a .env file is loaded beforehand when present).
type Config struct {
	Server struct {
		Port            string   `envconfig:"PORT" default:"8080"`
		CORSOrigins     []string `envconfig:"CORS_ORIGINS"`
		RateLimitPerSec float64  `envconfig:"RATE_LIMIT_PER_SEC" default:"10"`
		RateLimitBurst  int      `envconfig:"RATE_LIMIT_BURST" default:"20"`
		CacheTTLSeconds int      `envconfig:"CACHE_TTL_SECONDS" default:"30"`
	} `envconfig:"SERVER"`

	Database struct {
		// Driver selects the GORM driver: "sqlite" (default, single-file
		// store) or "mysql".
		Driver string `envconfig:"DRIVER" default:"sqlite"`
		// Path is the sqlite database file.
		Path string `envconfig:"PATH" default:"hotel.db"`
		// DSN is the mysql connection string; a mysql:// URL is also accepted.
		DSN string `envconfig:"DSN"`
	} `envconfig:"DB"`

	Auth struct {
		JWTSecret     string `envconfig:"JWT_SECRET" default:"hoteldesk_dev_secret_change_me"`
		TokenTTLHours int    `envconfig:"TOKEN_TTL_HOURS" default:"12"`
	} `envconfig:"AUTH"`

	Backup struct {
		Enable bool   `envconfig:"ENABLE" default:"true"`
		Dir    string `envconfig:"DIR" default:"backups"`
	} `envconfig:"BACKUP"`
}

// Load processes the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"*"}
	}
	return &cfg, nil
}
