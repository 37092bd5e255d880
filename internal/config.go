package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// Config is the relay server configuration, read from the environment (and .env when present).
type Config struct {
	Host             string        `env:"HOST,default=0.0.0.0"`
	Port             int           `env:"PORT,default=8080" validate:"min=0,max=65535"`
	WSPort           int           `env:"WS_PORT,default=0" validate:"min=0,max=65535"`
	ServerName       string        `env:"SERVER_NAME,default=Server" validate:"required"`
	BannedPhrases    string        `env:"BANNED_PHRASES"`
	BannedPhrasesDir string        `env:"BANNED_PHRASES_DIR"`
	BadgerFilepath   string        `env:"BADGER_FILEPATH,default=./data/badger"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	OutboxSize       int           `env:"OUTBOX_SIZE,default=256" validate:"min=1"`
	WriteTimeout     time.Duration `env:"WRITE_TIMEOUT,default=5s" validate:"min=0"`
	IdleTimeout      time.Duration `env:"IDLE_TIMEOUT,default=0s" validate:"min=0"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s" validate:"gt=0"`
	EventBufferSize  int           `env:"EVENT_BUFFER_SIZE,default=1024" validate:"min=1"`
	SinkTimeout      time.Duration `env:"SINK_TIMEOUT,default=500ms" validate:"gt=0"`
	RestartInterval  time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	MetricInterval   time.Duration `env:"METRIC_INTERVAL,default=0s" validate:"min=0"`
	MaxLineLength    int           `env:"MAX_LINE_LENGTH,default=4096" validate:"min=1"`
	ConsoleEnabled   bool          `env:"CONSOLE_ENABLED,default=true"`
}

// ClientConfig configures the terminal client.
type ClientConfig struct {
	ServerAddr string `env:"CHAT_SERVER_ADDR,default=localhost:8080" validate:"required,hostname_port"`
	Name       string `env:"CHAT_NAME"`
	LogLevel   string `env:"LOG_LEVEL,default=WARN"`
}

func LoadConfig() (Config, error) {
	var config Config
	if err := load(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}

func LoadClientConfig() (ClientConfig, error) {
	var config ClientConfig
	if err := load(&config); err != nil {
		return ClientConfig{}, err
	}
	return config, nil
}

func load(config any) error {
	if _, err := env.UnmarshalFromEnviron(config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Address is the TCP listen address.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// WSAddress is the websocket listen address, empty when the websocket listener is disabled.
func (c Config) WSAddress() string {
	if c.WSPort == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.Host, c.WSPort)
}

// Phrases splits BANNED_PHRASES on commas. Normalisation is left to the filter.
func (c Config) Phrases() []string {
	return lo.Filter(strings.Split(c.BannedPhrases, ","), func(p string, _ int) bool {
		return strings.TrimSpace(p) != ""
	})
}
