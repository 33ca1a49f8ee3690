// Package manifestsink provides a file-based manifest sink implementation.
package manifestsink

import (
	"path/filepath"

	"github.com/user/fixturegen/pkg/ports"
)

// Sink saves run manifests to files under a base directory.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new Sink rooted at baseDir.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SavePlan saves the generation plan as JSON.
func (s *Sink) SavePlan(data []byte) error {
	path := filepath.Join(s.baseDir, "plan.json")
	return s.fs.WriteFile(path, data)
}

// SaveReport saves the per-file generation report as JSON.
func (s *Sink) SaveReport(data []byte) error {
	path := filepath.Join(s.baseDir, "report.json")
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.ManifestSink
var _ ports.ManifestSink = (*Sink)(nil)
