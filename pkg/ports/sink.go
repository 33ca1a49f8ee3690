package ports

// ManifestSink abstracts manifest output for a generation run.
// It allows saving the computed plan and the final report as artifacts
// alongside the generated fixtures.
type ManifestSink interface {
	// Enabled returns true if manifest output is enabled.
	Enabled() bool

	// SavePlan saves the generation plan as JSON.
	SavePlan(data []byte) error

	// SaveReport saves the per-file generation report as JSON.
	SaveReport(data []byte) error
}
