package mocks

import (
	"sync"

	"github.com/user/fixturegen/pkg/ports"
)

// ManifestSink is a mock implementation of ports.ManifestSink that records
// the saved manifests.
type ManifestSink struct {
	mu sync.RWMutex

	enabled bool

	Plan   []byte
	Report []byte

	SavePlanFunc   func(data []byte) error
	SaveReportFunc func(data []byte) error
}

// NewManifestSink creates a new mock ManifestSink.
func NewManifestSink(enabled bool) *ManifestSink {
	return &ManifestSink{enabled: enabled}
}

func (m *ManifestSink) Enabled() bool {
	return m.enabled
}

func (m *ManifestSink) SavePlan(data []byte) error {
	if m.SavePlanFunc != nil {
		return m.SavePlanFunc(data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Plan = data
	return nil
}

func (m *ManifestSink) SaveReport(data []byte) error {
	if m.SaveReportFunc != nil {
		return m.SaveReportFunc(data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Report = data
	return nil
}

// Ensure ManifestSink implements ports.ManifestSink
var _ ports.ManifestSink = (*ManifestSink)(nil)
