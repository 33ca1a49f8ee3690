package pipeline

import (
	"fmt"
	"strings"
)

// =============================================================================
// Common Types
// =============================================================================

// FileSpec describes one fixture file to generate.
//
// A spec is either size-driven (Lines == 0) or count-driven (Lines > 0).
// A size-driven spec writes Template verbatim until the write offset reaches
// TargetBytes; the template is expected to end in a newline. A count-driven
// spec writes exactly Lines rendered lines; its template may embed the
// 1-based line number via a single %d verb, is repeated Repeat times per
// line, and gets a trailing newline appended.
type FileSpec struct {
	Name        string // file name, relative to the output directory
	TargetBytes int64  // minimum byte count for size-driven specs
	Lines       int    // fixed line count for count-driven specs (0 = size-driven)
	Repeat      int    // per-line template repetitions for count-driven specs (min 1)
	Template    string // line template
}

// SizeDriven reports whether generation stops on a byte target rather than
// a fixed line count.
func (s FileSpec) SizeDriven() bool {
	return s.Lines == 0
}

// RenderLine returns the line to write at the given 0-based index.
func (s FileSpec) RenderLine(i int) string {
	if s.SizeDriven() {
		return s.Template
	}
	segment := s.Template
	if strings.Contains(segment, "%d") {
		segment = fmt.Sprintf(segment, i+1)
	}
	repeat := s.Repeat
	if repeat < 1 {
		repeat = 1
	}
	return strings.Repeat(segment, repeat) + "\n"
}

// FileReport describes one generated file.
type FileReport struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Bytes int64  `json:"bytes"` // size on disk after close
	Lines int    `json:"lines"` // number of lines written
}

// =============================================================================
// Plan Stage Types
// =============================================================================

// PlanInput contains parameters for plan computation.
type PlanInput struct {
	OutputDir string     // directory the fixtures are written to
	Specs     []FileSpec // fixture specs in generation order
}

// PlannedFile is one entry of a computed generation plan.
type PlannedFile struct {
	Spec           FileSpec `json:"spec"`
	Path           string   `json:"path"`            // resolved output path
	PredictedLines int      `json:"predicted_lines"` // lines the write stage will produce
	PredictedBytes int64    `json:"predicted_bytes"` // resulting size in bytes
}

// PlanResult contains the resolved generation plan.
type PlanResult struct {
	OutputDir string        `json:"output_dir"`
	Files     []PlannedFile `json:"files"`
}

// =============================================================================
// Write Stage Types
// =============================================================================

// WriteInput contains parameters for generating one fixture file.
type WriteInput struct {
	Spec         FileSpec
	Path         string // resolved output path
	ShowProgress bool   // render a terminal progress bar for size-driven specs
}
