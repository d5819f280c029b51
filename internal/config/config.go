package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"GOMOKU_LOG_LEVEL" env-default:"info"`
	Game       Game       `yaml:"game"`
	Scoreboard Scoreboard `yaml:"scoreboard"`
	Redis      Redis      `yaml:"redis"`
}

type Game struct {
	// MaxRandomAttempts caps rejected tries of a random player per turn, 0 means no cap.
	MaxRandomAttempts int `yaml:"max-random-attempts" env:"GOMOKU_MAX_RANDOM_ATTEMPTS" env-default:"0"`
}

type Scoreboard struct {
	Enabled bool `yaml:"enabled" env:"GOMOKU_SCOREBOARD_ENABLED" env-default:"false"`
}

type Redis struct {
	Host string `yaml:"host" env:"GOMOKU_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"GOMOKU_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load configuration from config.yml, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
