// Package summarizer provides summary generation for fixture runs.
package summarizer

import (
	"time"

	"github.com/google/uuid"
	"github.com/user/fixturegen/pkg/pipeline"
)

// Summary contains all data collected during a generation run.
type Summary struct {
	// RunID uniquely identifies the generation run.
	RunID string

	// GeneratedAt is the time the summary was created.
	GeneratedAt time.Time

	// OutputDir is the directory the fixtures were written to.
	OutputDir string

	// Files lists the generated fixtures in generation order.
	Files []FileInfo
}

// FileInfo contains information about one generated fixture.
type FileInfo struct {
	Name  string
	Path  string
	Bytes int64
	Lines int
}

// TotalBytes returns the combined size of all generated fixtures.
func (s *Summary) TotalBytes() int64 {
	var total int64
	for _, f := range s.Files {
		total += f.Bytes
	}
	return total
}

// NewSummary creates a new Summary with a fresh run ID and the current
// timestamp.
func NewSummary() *Summary {
	return &Summary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithOutputDir sets the output directory.
func (b *Builder) WithOutputDir(dir string) *Builder {
	b.summary.OutputDir = dir
	return b
}

// WithReports adds one FileInfo per generation report.
func (b *Builder) WithReports(reports []pipeline.FileReport) *Builder {
	for _, r := range reports {
		b.summary.Files = append(b.summary.Files, FileInfo{
			Name:  r.Name,
			Path:  r.Path,
			Bytes: r.Bytes,
			Lines: r.Lines,
		})
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
