package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	DatasetSeed int64
	CatalogPath string
	OutputPath  string
}

func Load() (*Config, error) {
	// Load .env if present; plain environment variables otherwise.
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Environment: os.Getenv("ENV"),
		CatalogPath: os.Getenv("CATALOG_PATH"),
		OutputPath:  os.Getenv("OUTPUT_PATH"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "week.png"
	}

	cfg.DatasetSeed = 42
	if raw := os.Getenv("DATASET_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse DATASET_SEED: %w", err)
		}
		cfg.DatasetSeed = seed
	}

	return cfg, nil
}
