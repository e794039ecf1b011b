package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Load reads the optional dotenv files and then the process environment.
// Variables already present in the environment win over dotenv values.
func Load(dotenvFiles ...string) (*Config, error) {
	for _, file := range dotenvFiles {
		err := godotenv.Load(file)

		if errors.Is(err, fs.ErrNotExist) {
			logrus.WithField("file", file).Debug("dotenv file not found, skip")
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("load dotenv %s: %w", file, err)
		}
	}

	cfg, err := env.ParseAs[Config]()

	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}

// ConfigureLogger applies LogLevel to the package level logrus logger.
func (c *Config) ConfigureLogger() error {
	level, err := logrus.ParseLevel(c.LogLevel)

	if err != nil {
		return err
	}

	logrus.SetLevel(level)

	return nil
}
