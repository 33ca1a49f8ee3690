// Package nullsink provides a no-op manifest sink implementation.
package nullsink

import (
	"github.com/user/fixturegen/pkg/ports"
)

// Sink is a no-op implementation of ports.ManifestSink.
// It discards all manifest output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SavePlan does nothing.
func (s *Sink) SavePlan(data []byte) error {
	return nil
}

// SaveReport does nothing.
func (s *Sink) SaveReport(data []byte) error {
	return nil
}

// Ensure Sink implements ports.ManifestSink
var _ ports.ManifestSink = (*Sink)(nil)
