package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/vsh/pkg/vsh"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type PromptConfig struct {
	User string `yaml:"user,omitempty"`
	Host string `yaml:"host,omitempty"`
}

type FileConfig struct {
	VFS          string       `yaml:"vfs,omitempty"`
	Script       string       `yaml:"script,omitempty"`
	Prompt       PromptConfig `yaml:"prompt,omitempty"`
	HistoryLimit int          `yaml:"history_limit,omitempty"`
	Banner       *bool        `yaml:"banner,omitempty"`
	KeyHelp      bool         `yaml:"key_help,omitempty"`
}

// Load reads a vsh.yaml file from fs.
func Load(fs afero.Fs, path string) (*FileConfig, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, vsh.ErrInvalidConfig, err)
	}
	if cfg.HistoryLimit < 0 {
		return nil, fmt.Errorf("%s: %w: history_limit must not be negative", path, vsh.ErrInvalidConfig)
	}
	return &cfg, nil
}
