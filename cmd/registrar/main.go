package main

import (
	"os"

	"github.com/campuscore/registry/internal/config"
	"github.com/campuscore/registry/internal/pkg/apperrors"
	"github.com/campuscore/registry/internal/pkg/logger"
	"github.com/campuscore/registry/internal/registry"
	"github.com/campuscore/registry/internal/seed"
)

func main() {
	configPath := config.GetEnv("CONFIG_PATH", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	dataset, err := seed.Load(cfg.Seed.Dataset)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrDatasetNotFound, apperrors.ErrInvalidDataset) {
			logger.Error().Err(err).Str("path", cfg.Seed.Dataset).Msg("Seed dataset is missing or malformed")
		} else {
			logger.Error().Err(err).Str("path", cfg.Seed.Dataset).Msg("Failed to load seed dataset")
		}
		os.Exit(1)
	}

	reg := registry.NewRegistrar()
	if err := seed.Apply(reg, dataset, logger.WithComponent("seed")); err != nil {
		logger.Error().Err(err).Msg("Seed dataset contained invalid entities")
		os.Exit(1)
	}

	renderReport(os.Stdout, reg.FullReport())
}
