package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/finnews/finner/config"
)

// NewTestConfig loads the project config.yaml with the dataset path made
// absolute, so it works from any package directory.
func NewTestConfig() (*config.Config, error) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to find project root: %w", err)
	}
	cfg, err := config.LoadConfig(filepath.Join(projectRoot, "config.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !filepath.IsAbs(cfg.Dataset.Path) {
		cfg.Dataset.Path = filepath.Join(projectRoot, cfg.Dataset.Path)
	}
	return cfg, nil
}

// FindProjectRoot returns the absolute path to the project root directory.
func FindProjectRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("could not get current file path")
	}

	dir := filepath.Dir(currentFilePath)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		// If we've reached the top-level directory, the project root is not found.
		if dir == filepath.Dir(dir) {
			return "", fmt.Errorf("project root not found")
		}

		dir = filepath.Dir(dir)
	}
}
