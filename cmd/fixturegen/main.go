// Package main provides the CLI entry point for fixturegen.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/fixturegen/pkg/adapters/logger"
	"github.com/user/fixturegen/pkg/adapters/manifestsink"
	"github.com/user/fixturegen/pkg/adapters/nullsink"
	"github.com/user/fixturegen/pkg/adapters/osfilesystem"
	"github.com/user/fixturegen/pkg/config"
	"github.com/user/fixturegen/pkg/orchestrator"
	"github.com/user/fixturegen/pkg/ports"
	"github.com/user/fixturegen/pkg/stages/plan"
	"github.com/user/fixturegen/pkg/stages/write"
	"github.com/user/fixturegen/pkg/summarizer"
)

var version = "dev"

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp builds the CLI application.
func newApp() *cli.App {
	return &cli.App{
		Name:           "fixturegen",
		Usage:          l10n.T("Generate text fixture files of known approximate size"),
		Version:        version,
		DefaultCommand: "generate",
		Commands: []*cli.Command{
			generateCommand(),
		},
	}
}

// generateCommand defines the generate subcommand.
func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: l10n.T("Generate the configured fixture files"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   ".",
				Usage:   l10n.T("Output directory for the generated files"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("YAML fixture set file (default: built-in small/medium/big set)"),
			},
			&cli.StringFlag{
				Name:  "manifest",
				Usage: l10n.T("Directory to save plan and report manifests as JSON"),
			},
			&cli.StringFlag{
				Name:  "summary",
				Usage: l10n.T("Write a markdown run summary to this path"),
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: l10n.T("Show a progress bar for size-driven files"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Action: runGenerate,
	}
}

// runGenerate executes the generate command.
func runGenerate(c *cli.Context) error {
	// Load the fixture set
	var cfg config.Config
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
	} else {
		cfg = config.Defaults()
	}

	fixtureCfg := cfg.ToFixtureConfig()
	if c.IsSet("out") {
		fixtureCfg.OutputDir = c.String("out")
	}
	if c.Bool("progress") {
		fixtureCfg.ShowProgress = true
	}

	// Create logger
	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
		fixtureCfg.ShowProgress = false
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	// Create adapters
	fs := osfilesystem.New()

	var sink ports.ManifestSink
	if dir := c.String("manifest"); dir != "" {
		if err := fs.MkdirAll(dir); err != nil {
			return fmt.Errorf("create manifest directory: %w", err)
		}
		sink = manifestsink.New(dir, fs)
	} else {
		sink = nullsink.New()
	}

	// Create orchestrator
	orch := orchestrator.New(
		plan.NewStage(),
		write.New(fs, log),
		fs,
		sink,
		log,
	)

	result, err := orch.Run(ctx, fixtureCfg.ToOrchestratorConfig())
	if err != nil {
		return err
	}

	// Write run summary
	if path := c.String("summary"); path != "" {
		summary := summarizer.NewBuilder().
			WithOutputDir(fixtureCfg.OutputDir).
			WithReports(result.Reports).
			Build()
		writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter())
		if err := writer.Write(path, summary); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	return nil
}
