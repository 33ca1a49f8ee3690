// Package plan implements the plan computation stage.
package plan

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/user/fixturegen/pkg/pipeline"
)

// Stage resolves a fixture set into a concrete generation plan.
// This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new plan stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute computes the plan based on the input parameters.
func (s *Stage) Execute(ctx context.Context, input pipeline.PlanInput) (pipeline.PlanResult, error) {
	return ComputePlan(input)
}

// ComputePlan resolves output paths and predicts the exact line count and
// byte size each spec will produce. This is exposed as a standalone function
// for testing and reuse.
//
// For a size-driven spec the write loop checks the offset before each write,
// so it stops at the first multiple of the template length that is >= the
// target: lines = ceil(target/len(template)). A target <= 0 yields an empty
// file. For a count-driven spec the size is the sum of the rendered lines.
func ComputePlan(input pipeline.PlanInput) (pipeline.PlanResult, error) {
	files := make([]pipeline.PlannedFile, 0, len(input.Specs))

	for _, spec := range input.Specs {
		if spec.Name == "" {
			return pipeline.PlanResult{}, errors.New("fixture spec has empty name")
		}
		if spec.Template == "" {
			return pipeline.PlanResult{}, fmt.Errorf("fixture %s has empty template", spec.Name)
		}
		if spec.Lines < 0 {
			return pipeline.PlanResult{}, fmt.Errorf("fixture %s has negative line count %d", spec.Name, spec.Lines)
		}

		lines, bytes := predict(spec)
		files = append(files, pipeline.PlannedFile{
			Spec:           spec,
			Path:           filepath.Join(input.OutputDir, spec.Name),
			PredictedLines: lines,
			PredictedBytes: bytes,
		})
	}

	return pipeline.PlanResult{
		OutputDir: input.OutputDir,
		Files:     files,
	}, nil
}

// predict returns the line count and byte size a spec will generate.
func predict(spec pipeline.FileSpec) (int, int64) {
	if spec.SizeDriven() {
		if spec.TargetBytes <= 0 {
			return 0, 0
		}
		lineLen := int64(len(spec.Template))
		lines := (spec.TargetBytes + lineLen - 1) / lineLen
		return int(lines), lines * lineLen
	}

	var total int64
	for i := 0; i < spec.Lines; i++ {
		total += int64(len(spec.RenderLine(i)))
	}
	return spec.Lines, total
}
