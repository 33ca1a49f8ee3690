// Package write implements the file generation stage.
package write

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/user/fixturegen/pkg/pipeline"
	"github.com/user/fixturegen/pkg/ports"
)

// Stage generates one fixture file per execution.
//
// A size-driven spec is written by appending the template until the running
// write offset is no longer below the target. The offset check happens
// BEFORE each write: a target <= 0 therefore produces a zero-byte file with
// zero lines. A count-driven spec writes exactly Spec.Lines rendered lines.
// The file handle is closed on every exit path; after a successful write the
// size on disk is queried and reported.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a new write stage.
func New(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("write"),
	}
}

// Execute generates the fixture file described by the input.
func (s *Stage) Execute(ctx context.Context, input pipeline.WriteInput) (pipeline.FileReport, error) {
	spec := input.Spec
	if spec.SizeDriven() {
		s.logger.Debug("Writing %s until %d bytes", input.Path, spec.TargetBytes)
	} else {
		s.logger.Debug("Writing %d lines to %s", spec.Lines, input.Path)
	}

	file, err := s.fs.Create(input.Path)
	if err != nil {
		return pipeline.FileReport{}, fmt.Errorf("create %s: %w", input.Path, err)
	}

	// Close must run even when the loop fails or is cancelled; the partial
	// file is kept, matching the no-cleanup failure policy.
	lines, writeErr := s.writeLines(ctx, file, input)
	closeErr := file.Close()
	if writeErr != nil {
		if errors.Is(writeErr, context.Canceled) || errors.Is(writeErr, context.DeadlineExceeded) {
			s.logger.Warn("Generation cancelled, partial file kept: %s", input.Path)
		}
		return pipeline.FileReport{}, writeErr
	}
	if closeErr != nil {
		return pipeline.FileReport{}, fmt.Errorf("close %s: %w", input.Path, closeErr)
	}

	size, err := s.fs.Size(input.Path)
	if err != nil {
		return pipeline.FileReport{}, fmt.Errorf("stat %s: %w", input.Path, err)
	}

	s.logger.Debug("Wrote %d lines (%d bytes) to %s", lines, size, input.Path)
	return pipeline.FileReport{
		Name:  spec.Name,
		Path:  input.Path,
		Bytes: size,
		Lines: lines,
	}, nil
}

// writeLines runs the generation loop and returns the number of lines written.
func (s *Stage) writeLines(ctx context.Context, file ports.WritableFile, input pipeline.WriteInput) (int, error) {
	spec := input.Spec

	if !spec.SizeDriven() {
		for i := 0; i < spec.Lines; i++ {
			if _, err := file.WriteString(spec.RenderLine(i)); err != nil {
				return i, fmt.Errorf("write %s: %w", input.Path, err)
			}
		}
		return spec.Lines, nil
	}

	var bar *progressbar.ProgressBar
	if input.ShowProgress {
		bar = progressbar.NewOptions64(spec.TargetBytes,
			progressbar.OptionSetDescription(spec.Name),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
	}

	lines := 0
	for file.Offset() < spec.TargetBytes {
		select {
		case <-ctx.Done():
			return lines, fmt.Errorf("write %s: %w", input.Path, ctx.Err())
		default:
		}

		n, err := file.WriteString(spec.Template)
		if err != nil {
			return lines, fmt.Errorf("write %s: %w", input.Path, err)
		}
		lines++
		if bar != nil {
			_ = bar.Add(n)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return lines, nil
}
