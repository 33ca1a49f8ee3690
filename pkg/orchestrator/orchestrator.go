// Package orchestrator coordinates the generation pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/user/fixturegen/pkg/pipeline"
	"github.com/user/fixturegen/pkg/ports"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// OutputDir is the directory the fixtures are written to.
	// The working directory is never consulted implicitly; callers that
	// want it pass ".".
	OutputDir string

	// Specs are the fixture specs in generation order.
	Specs []pipeline.FileSpec

	// ShowProgress renders a terminal progress bar for size-driven specs.
	ShowProgress bool
}

// DefaultConfig returns a Config writing to the current directory.
func DefaultConfig() Config {
	return Config{
		OutputDir: ".",
	}
}

// RunResult contains the outcome of a generation run.
type RunResult struct {
	Plan    pipeline.PlanResult
	Reports []pipeline.FileReport
}

// Orchestrator coordinates the execution of the plan and write stages.
// Files are generated strictly sequentially; each write stage execution owns
// its file handle exclusively.
type Orchestrator struct {
	planStage  pipeline.Stage[pipeline.PlanInput, pipeline.PlanResult]
	writeStage pipeline.Stage[pipeline.WriteInput, pipeline.FileReport]
	fs         ports.FileSystem
	sink       ports.ManifestSink
	logger     ports.Logger
}

// New creates a new Orchestrator.
func New(
	planStage pipeline.Stage[pipeline.PlanInput, pipeline.PlanResult],
	writeStage pipeline.Stage[pipeline.WriteInput, pipeline.FileReport],
	fs ports.FileSystem,
	sink ports.ManifestSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		planStage:  planStage,
		writeStage: writeStage,
		fs:         fs,
		sink:       sink,
		logger:     logger,
	}
}

// Run executes the complete pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.T("Starting generation"))

	if config.OutputDir != "" && config.OutputDir != "." {
		if err := o.fs.MkdirAll(config.OutputDir); err != nil {
			return RunResult{}, fmt.Errorf("create output directory: %w", err)
		}
	}

	// 1. Plan computation
	o.logger.Debug(l10n.F("Planning %d fixture files", len(config.Specs)))
	plan, err := o.planStage.Execute(ctx, pipeline.PlanInput{
		OutputDir: config.OutputDir,
		Specs:     config.Specs,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to compute plan: %s", err))
		return RunResult{}, fmt.Errorf("plan stage: %w", err)
	}

	var totalPredicted int64
	for _, f := range plan.Files {
		totalPredicted += f.PredictedBytes
	}
	o.logger.Debug(l10n.F("Plan computed: %d files, %d bytes total", len(plan.Files), totalPredicted))

	// Save plan manifest
	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(plan, "", "  "); err == nil {
			if err := o.sink.SavePlan(data); err != nil {
				o.logger.Warn(l10n.F("Failed to write manifest: %s", err))
			}
		}
	}

	// 2. Sequential file generation
	reports := make([]pipeline.FileReport, 0, len(plan.Files))
	for _, planned := range plan.Files {
		report, err := o.writeStage.Execute(ctx, pipeline.WriteInput{
			Spec:         planned.Spec,
			Path:         planned.Path,
			ShowProgress: config.ShowProgress,
		})
		if err != nil {
			o.logger.Error(l10n.F("Failed to generate %s: %s", planned.Spec.Name, err))
			return RunResult{}, fmt.Errorf("write stage: %w", err)
		}

		o.logger.Info(l10n.F("%s generated with size %d bytes.", report.Name, report.Bytes))
		reports = append(reports, report)
	}

	// 3. Summary line
	names := make([]string, len(reports))
	for i, r := range reports {
		names[i] = r.Name
	}
	o.logger.Info(l10n.F("Test files generated: %s", strings.Join(names, ", ")))

	// Save report manifest
	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(reports, "", "  "); err == nil {
			if err := o.sink.SaveReport(data); err != nil {
				o.logger.Warn(l10n.F("Failed to write manifest: %s", err))
			}
		}
	}

	return RunResult{
		Plan:    plan,
		Reports: reports,
	}, nil
}
