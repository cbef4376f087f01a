package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/civitrans/ptagen/pkg/ptagen"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "ptagen.yaml"

// ProjectConfig describes one project's generation and release settings.
// Every field has a working default, so a project with no config file at
// all still generates into the conventional layout.
type ProjectConfig struct {
	SpecDir      string   `yaml:"spec_dir"`
	OutDir       string   `yaml:"out_dir"`
	Package      string   `yaml:"package"`
	Compiler     string   `yaml:"compiler"`
	Formatter    string   `yaml:"formatter"`
	DistDir      string   `yaml:"dist_dir"`
	BuildCommand []string `yaml:"build_command"`
	TestCommand  []string `yaml:"test_command"`
}

// Default returns the conventional project layout.
func Default() *ProjectConfig {
	return &ProjectConfig{
		SpecDir:      "./spec",
		OutDir:       "./ptagtypes",
		Package:      "ptagtypes",
		Compiler:     "go-jsonschema",
		Formatter:    "gofmt",
		DistDir:      "./dist",
		BuildCommand: []string{"make", "dist"},
		TestCommand:  []string{"go", "test", "./..."},
	}
}

// Load reads ptagen.yaml from sourcePath. Unset fields fall back to the
// defaults, and the schema package location honors the environment override
// last so CI can point a checkout at a different schema set.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ptagen.ErrInvalidConfig, configPath, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadOrDefault behaves like Load but treats a missing config file as the
// default configuration rather than an error.
func LoadOrDefault(sourcePath string) (*ProjectConfig, error) {
	cfg, err := Load(sourcePath)
	if errors.Is(err, ErrConfigNotFound) {
		cfg = Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return cfg, err
}

func (c *ProjectConfig) applyEnv() {
	if dir := os.Getenv(ptagen.SpecDirEnv); dir != "" {
		c.SpecDir = dir
	}
}
