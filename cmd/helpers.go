package cmd

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
	"github.com/ziadkadry99/ddo-deck/internal/config"
	"github.com/ziadkadry99/ddo-deck/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `ddodeck init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadCatalog reads the configured data file, or the built-in catalog when
// none is set.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.DataFile)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}

func newLogger(cfg *config.Config) (logr.Logger, error) {
	level := string(cfg.LogLevel)
	if verbose {
		level = string(config.LevelDebug)
	}
	return logging.New(level)
}
