// Package config provides configuration loading for fixture sets.
package config

import (
	"fmt"
	"os"

	"github.com/user/fixturegen/pkg/fixturegen"
	"github.com/user/fixturegen/pkg/pipeline"
	"gopkg.in/yaml.v3"
)

// Config represents a fixture set loaded from a YAML file.
type Config struct {
	// OutputDir is the directory fixtures are written to.
	OutputDir string `yaml:"output_dir"`

	// Progress enables the terminal progress bar for size-driven files.
	Progress bool `yaml:"progress"`

	// Files lists the fixtures to generate, in order.
	Files []FileConfig `yaml:"files"`
}

// FileConfig describes one fixture file.
// Either target_bytes (size-driven) or lines (count-driven) is set.
type FileConfig struct {
	Name        string `yaml:"name"`
	TargetBytes int64  `yaml:"target_bytes"`
	Lines       int    `yaml:"lines"`
	Repeat      int    `yaml:"repeat"`
	Template    string `yaml:"template"`
}

// Defaults returns a Config describing the standard small/medium/big set
// written to the current directory.
func Defaults() Config {
	specs := fixturegen.StandardSpecs()
	files := make([]FileConfig, len(specs))
	for i, s := range specs {
		files[i] = FileConfig{
			Name:        s.Name,
			TargetBytes: s.TargetBytes,
			Lines:       s.Lines,
			Repeat:      s.Repeat,
			Template:    s.Template,
		}
	}
	return Config{
		OutputDir: ".",
		Files:     files,
	}
}

// Load reads a YAML fixture set from path, starting from Defaults().
// A file that lists its own fixtures replaces the standard set entirely.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return cfg, nil
}

// ToSpecs converts the configured files to pipeline specs.
func (c Config) ToSpecs() []pipeline.FileSpec {
	specs := make([]pipeline.FileSpec, len(c.Files))
	for i, f := range c.Files {
		specs[i] = pipeline.FileSpec{
			Name:        f.Name,
			TargetBytes: f.TargetBytes,
			Lines:       f.Lines,
			Repeat:      f.Repeat,
			Template:    f.Template,
		}
	}
	return specs
}

// ToFixtureConfig converts the Config to a fixturegen.Config.
func (c Config) ToFixtureConfig() fixturegen.Config {
	return fixturegen.Config{
		OutputDir:    c.OutputDir,
		Specs:        c.ToSpecs(),
		ShowProgress: c.Progress,
	}
}
