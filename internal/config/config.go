package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Host    string `env:"HOST"`
	Port    int    `env:"PORT" envDefault:"3000"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// StaticDir, when set, is served as the browser client.
	StaticDir string `env:"STATIC_DIR"`

	WS WSConfig

	// RandSeed makes room shuffles reproducible when non-zero.
	RandSeed        int64         `env:"RAND_SEED"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type WSConfig struct {
	AllowedOrigins []string      `env:"WS_ALLOWED_ORIGINS" envSeparator:","`
	PingInterval   time.Duration `env:"WS_PING_INTERVAL" envDefault:"25s"`
	PongTimeout    time.Duration `env:"WS_PONG_TIMEOUT" envDefault:"60s"`
	WriteTimeout   time.Duration `env:"WS_WRITE_TIMEOUT" envDefault:"10s"`
	SendBuffer     int           `env:"WS_SEND_BUFFER" envDefault:"32"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads configuration from the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT %d out of range", c.Port)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT %q: want json or console", c.LogFormat)
	}
	if c.WS.PongTimeout <= 0 || c.WS.PingInterval <= 0 {
		return errors.New("WS_PING_INTERVAL and WS_PONG_TIMEOUT must be positive")
	}
	if c.WS.PingInterval >= c.WS.PongTimeout {
		return fmt.Errorf("WS_PING_INTERVAL %s must be shorter than WS_PONG_TIMEOUT %s", c.WS.PingInterval, c.WS.PongTimeout)
	}
	if c.WS.SendBuffer <= 0 {
		return fmt.Errorf("WS_SEND_BUFFER %d must be positive", c.WS.SendBuffer)
	}
	return nil
}

func (c Config) HTTPAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
