package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_RELAY_ADDR and E2E_RELAY_WS_URL target an already running relay.
	// When empty, the suite starts its own relay on loopback ports.
	RelayAddr  string `envconfig:"E2E_RELAY_ADDR"`
	RelayWSURL string `envconfig:"E2E_RELAY_WS_URL"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_VERBOSE logs every line received by the test clients
	Verbose bool `envconfig:"E2E_VERBOSE" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
