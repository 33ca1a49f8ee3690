// Package fixturegen provides a high-level API for generating test fixtures.
package fixturegen

import (
	"github.com/user/fixturegen/pkg/orchestrator"
	"github.com/user/fixturegen/pkg/pipeline"
)

// Config represents the configuration for a fixture generation run.
type Config struct {
	// OutputDir is the directory fixtures are written to (default: ".").
	OutputDir string

	// Specs are the fixture files to generate, in order.
	Specs []pipeline.FileSpec

	// ShowProgress renders a terminal progress bar for size-driven files.
	ShowProgress bool
}

// StandardSpecs returns the default fixture set: a small count-driven file
// and two size-driven files with increasing byte targets.
func StandardSpecs() []pipeline.FileSpec {
	return []pipeline.FileSpec{
		{
			Name:     "small.txt",
			Lines:    18,
			Repeat:   2,
			Template: "This is line %d of the small test file. ",
		},
		{
			Name:        "medium.txt",
			TargetBytes: 51200,
			Template:    "This is a line in the medium test file. It is repeated many times.\n",
		},
		{
			Name:        "big.txt",
			TargetBytes: 420000,
			Template:    "This is a line in the big test file. It is repeated many times to generate a large file.\n",
		},
	}
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with the standard fixture set
// targeting the current directory.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: Config{
			OutputDir: ".",
			Specs:     StandardSpecs(),
		},
	}
}

// WithOutputDir sets the output directory.
func (b *ConfigBuilder) WithOutputDir(dir string) *ConfigBuilder {
	b.config.OutputDir = dir
	return b
}

// WithSpecs replaces the fixture set.
func (b *ConfigBuilder) WithSpecs(specs []pipeline.FileSpec) *ConfigBuilder {
	b.config.Specs = specs
	return b
}

// AddSpec appends a fixture spec to the set.
func (b *ConfigBuilder) AddSpec(spec pipeline.FileSpec) *ConfigBuilder {
	b.config.Specs = append(b.config.Specs, spec)
	return b
}

// WithProgress enables or disables the terminal progress bar.
func (b *ConfigBuilder) WithProgress(show bool) *ConfigBuilder {
	b.config.ShowProgress = show
	return b
}

// Build returns the constructed Config.
func (b *ConfigBuilder) Build() Config {
	return b.config
}

// ToOrchestratorConfig converts the Config to an orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		OutputDir:    c.OutputDir,
		Specs:        c.Specs,
		ShowProgress: c.ShowProgress,
	}
}
