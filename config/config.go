// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds settings shared by the CLI commands.
type Config struct {
	Port       string   `env:"PIPGUIDE_PORT"        envDefault:"5000"`
	PPCM       float64  `env:"PIPGUIDE_PPCM"        envDefault:"52"`
	Containers []string `env:"PIPGUIDE_CONTAINERS"  envDefault:"from_plate,to_plate" envSeparator:","`
	AlignColor string   `env:"PIPGUIDE_ALIGN_COLOR" envDefault:"red"`
	Page       string   `env:"PIPGUIDE_PAGE"`
}

// Load reads the named dotenv files (".env" when none are given), then
// parses the environment. Missing dotenv files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if !(cfg.PPCM > 0) || math.IsInf(cfg.PPCM, 0) {
		return Config{}, fmt.Errorf("PIPGUIDE_PPCM must be finite and positive, got %v", cfg.PPCM)
	}
	if len(cfg.Containers) == 0 {
		return Config{}, errors.New("PIPGUIDE_CONTAINERS is empty")
	}
	return cfg, nil
}
