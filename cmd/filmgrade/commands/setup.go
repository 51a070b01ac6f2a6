package commands

import (
	"fmt"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/scoringconfig"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/config"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/logger"
)

// setup loads config and builds the logger shared by all commands
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, logger.New(cfg), nil
}

// loadWeights resolves the scoring weights: --weights flag, then the
// configured weights file, then the built-in defaults.
func loadWeights(cfg *config.Config, log *logger.Logger) (*scoringconfig.Config, error) {
	path := weightsFile
	if path == "" {
		path = cfg.Grading.WeightsFile
	}
	if path == "" {
		return scoringconfig.Default(), nil
	}

	weights, err := scoringconfig.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load weights %s: %w", path, err)
	}

	hash, err := scoringconfig.Hash(weights)
	if err != nil {
		return nil, err
	}
	log.WithFields(map[string]interface{}{
		"file": path,
		"hash": hash,
	}).Info("Loaded scoring weights")

	return weights, nil
}
