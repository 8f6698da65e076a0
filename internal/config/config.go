package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// MustReadSink reads the sink configuration from the environment and an
// optional .env file in the working directory.
func MustReadSink() *SinkConfig {
	config := SinkConfig{}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if err := cleanenv.ReadEnv(&config); err != nil {
		panic(err)
	}

	return &config
}

type SinkConfig struct {
	Deployment DeploymentConfig
	Log        LogConfig
}

type DeploymentConfig struct {
	Port            int           `env:"DEPLOYMENT_PORT" env-default:"8000"`
	ShutdownTimeout time.Duration `env:"DEPLOYMENT_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type LogConfig struct {
	Level string `env:"SINK_LOG_LEVEL" env-default:"info"`
}

func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}

	return level, nil
}
