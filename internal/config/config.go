// Package config holds the Zabbix connection settings, populated from
// ZABBIX_* environment variables with command-line flags taking precedence.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config is the connection configuration for a single invocation.
type Config struct {
	ServerURL          string        `env:"ZABBIX_SERVER_URL"`
	Username           string        `env:"ZABBIX_USERNAME"`
	Password           string        `env:"ZABBIX_PASSWORD"`
	Timeout            time.Duration `env:"ZABBIX_TIMEOUT" envDefault:"10s"`
	InsecureSkipVerify bool          `env:"ZABBIX_INSECURE_SKIP_TLS_VERIFY" envDefault:"false"`
	LogLevel           string        `env:"ZABBIX_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}
	return cfg, nil
}

// Validate checks that everything needed to open an API session is set.
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("zabbix server URL is required (use --server-url or ZABBIX_SERVER_URL)")
	}
	if c.Username == "" {
		return fmt.Errorf("zabbix username is required (use --username or ZABBIX_USERNAME)")
	}
	if c.Password == "" {
		return fmt.Errorf("zabbix password is required (use --password or ZABBIX_PASSWORD)")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("zabbix timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
