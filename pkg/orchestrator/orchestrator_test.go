package orchestrator_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/user/fixturegen/pkg/adapters/logger"
	"github.com/user/fixturegen/pkg/fixturegen"
	"github.com/user/fixturegen/pkg/mocks"
	"github.com/user/fixturegen/pkg/orchestrator"
	"github.com/user/fixturegen/pkg/pipeline"
	"github.com/user/fixturegen/pkg/stages/plan"
	"github.com/user/fixturegen/pkg/stages/write"
)

func newOrchestrator(fs *mocks.FileSystem, sink *mocks.ManifestSink) *orchestrator.Orchestrator {
	log := logger.NewNoop()
	return orchestrator.New(
		plan.NewStage(),
		write.New(fs, log),
		fs,
		sink,
		log,
	)
}

func TestOrchestrator_Run_StandardSet(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := mocks.NewManifestSink(true)
	orch := newOrchestrator(fs, sink)

	result, err := orch.Run(context.Background(), orchestrator.Config{
		OutputDir: "out",
		Specs:     fixturegen.StandardSpecs(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(result.Reports))
	}

	expected := []struct {
		name  string
		bytes int64
		lines int
	}{
		{"small.txt", 1440, 18},
		{"medium.txt", 51255, 765},
		{"big.txt", 420080, 4720},
	}
	for i, exp := range expected {
		got := result.Reports[i]
		if got.Name != exp.name {
			t.Errorf("reports[%d].Name: expected %q, got %q", i, exp.name, got.Name)
		}
		if got.Bytes != exp.bytes {
			t.Errorf("reports[%d].Bytes: expected %d, got %d", i, exp.bytes, got.Bytes)
		}
		if got.Lines != exp.lines {
			t.Errorf("reports[%d].Lines: expected %d, got %d", i, exp.lines, got.Lines)
		}

		// Reports must match the plan predictions.
		planned := result.Plan.Files[i]
		if planned.PredictedBytes != got.Bytes || planned.PredictedLines != got.Lines {
			t.Errorf("reports[%d] does not match plan: plan %+v, report %+v", i, planned, got)
		}
	}

	data, ok := fs.GetFile(filepath.Join("out", "medium.txt"))
	if !ok {
		t.Fatal("expected medium.txt to be written")
	}
	if int64(len(data)) != 51255 {
		t.Errorf("medium.txt on disk: expected 51255 bytes, got %d", len(data))
	}
}

func TestOrchestrator_Run_SavesManifests(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := mocks.NewManifestSink(true)
	orch := newOrchestrator(fs, sink)

	if _, err := orch.Run(context.Background(), orchestrator.Config{Specs: fixturegen.StandardSpecs()}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var planOut pipeline.PlanResult
	if err := json.Unmarshal(sink.Plan, &planOut); err != nil {
		t.Fatalf("plan manifest is not valid JSON: %v", err)
	}
	if len(planOut.Files) != 3 {
		t.Errorf("expected 3 planned files in manifest, got %d", len(planOut.Files))
	}

	var reports []pipeline.FileReport
	if err := json.Unmarshal(sink.Report, &reports); err != nil {
		t.Fatalf("report manifest is not valid JSON: %v", err)
	}
	if len(reports) != 3 {
		t.Errorf("expected 3 reports in manifest, got %d", len(reports))
	}
}

func TestOrchestrator_Run_DisabledSink(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := mocks.NewManifestSink(false)
	orch := newOrchestrator(fs, sink)

	if _, err := orch.Run(context.Background(), orchestrator.Config{Specs: fixturegen.StandardSpecs()}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if sink.Plan != nil || sink.Report != nil {
		t.Error("expected no manifests to be saved through a disabled sink")
	}
}

func TestOrchestrator_Run_PlanError(t *testing.T) {
	fs := mocks.NewFileSystem()
	orch := newOrchestrator(fs, mocks.NewManifestSink(false))

	_, err := orch.Run(context.Background(), orchestrator.Config{
		Specs: []pipeline.FileSpec{{Name: "broken.txt"}}, // no template
	})
	if err == nil {
		t.Fatal("expected plan validation error")
	}
}

func TestOrchestrator_Run_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteErr = errors.New("disk full")
	orch := newOrchestrator(fs, mocks.NewManifestSink(false))

	_, err := orch.Run(context.Background(), orchestrator.Config{Specs: fixturegen.StandardSpecs()})
	if err == nil {
		t.Fatal("expected write error to propagate")
	}
	if !errors.Is(err, fs.WriteErr) {
		t.Errorf("expected wrapped write error, got %v", err)
	}
}

func TestOrchestrator_Run_CreatesOutputDir(t *testing.T) {
	fs := mocks.NewFileSystem()
	orch := newOrchestrator(fs, mocks.NewManifestSink(false))

	if _, err := orch.Run(context.Background(), orchestrator.Config{
		OutputDir: "nested/dir",
		Specs:     fixturegen.StandardSpecs(),
	}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	exists, err := fs.Exists("nested/dir")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected output directory to be created")
	}
}
