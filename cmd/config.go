package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/scriptdiff/scriptdiff/config"
)

// loadConfig returns the user's config, or defaults when there is no config file.
func loadConfig(logger *slog.Logger) (*config.Config, error) {
	var (
		cfg  *config.Config
		err  error
		path = cfgFile
	)
	if path == "" {
		path = config.DefaultConfigFilePath
		cfg, err = config.LoadFromFile()
	} else {
		cfg, err = config.LoadFrom(path)
	}

	if errors.Is(err, os.ErrNotExist) {
		logger.Debug("no config file, using defaults", "path", path)
		return &config.Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

func saveConfig(cfg *config.Config) (string, error) {
	if cfgFile == "" {
		return config.DefaultConfigFilePath, cfg.Save()
	}
	return cfgFile, cfg.SaveTo(cfgFile)
}
