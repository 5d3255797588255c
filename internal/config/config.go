package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env         string `env:"ENV" envDefault:"local"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DatasetPath string `env:"DATASET_PATH" envDefault:"data.csv"`
	SelfCheck   SelfCheck
}

// SelfCheck bounds how much of each list the self-check report prints.
type SelfCheck struct {
	AuthorListLimit    int `env:"AUTHOR_LIST_LIMIT" envDefault:"10"`
	RatingPreviewLimit int `env:"RATING_PREVIEW_LIMIT" envDefault:"5"`
}

// LoadEnvFiles reads .env and .env.local. Variables already set in the
// environment win over both files.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load reads env files and parses the environment into a Config.
func Load() (*Config, error) {
	LoadEnvFiles()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.SelfCheck.AuthorListLimit < 0 || cfg.SelfCheck.RatingPreviewLimit < 0 {
		return nil, errors.New("parse config: preview limits must not be negative")
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	return cfg
}
