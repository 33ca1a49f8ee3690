package plan

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/user/fixturegen/pkg/fixturegen"
	"github.com/user/fixturegen/pkg/pipeline"
)

// TestComputePlan_MediumFixture pins the exact arithmetic for the medium
// fixture: a 67-byte template written until the offset reaches 51200 bytes
// stops after ceil(51200/67) = 765 lines, at 765*67 = 51255 bytes.
func TestComputePlan_MediumFixture(t *testing.T) {
	template := "This is a line in the medium test file. It is repeated many times.\n"
	if len(template) != 67 {
		t.Fatalf("template length changed: expected 67, got %d", len(template))
	}

	input := pipeline.PlanInput{
		OutputDir: "out",
		Specs: []pipeline.FileSpec{
			{Name: "medium.txt", TargetBytes: 51200, Template: template},
		},
	}

	result, err := ComputePlan(input)
	if err != nil {
		t.Fatalf("ComputePlan failed: %v", err)
	}
	if len(result.Files) != 1 {
		t.Fatalf("expected 1 planned file, got %d", len(result.Files))
	}

	f := result.Files[0]
	if f.Path != filepath.Join("out", "medium.txt") {
		t.Errorf("path: expected %q, got %q", filepath.Join("out", "medium.txt"), f.Path)
	}
	if f.PredictedLines != 765 {
		t.Errorf("lines: expected 765, got %d", f.PredictedLines)
	}
	if f.PredictedBytes != 51255 {
		t.Errorf("bytes: expected 51255, got %d", f.PredictedBytes)
	}
}

// TestComputePlan_BigFixture pins the big fixture: an 89-byte template and a
// 420000-byte target give ceil(420000/89) = 4720 lines, 420080 bytes.
func TestComputePlan_BigFixture(t *testing.T) {
	template := "This is a line in the big test file. It is repeated many times to generate a large file.\n"
	if len(template) != 89 {
		t.Fatalf("template length changed: expected 89, got %d", len(template))
	}

	result, err := ComputePlan(pipeline.PlanInput{
		Specs: []pipeline.FileSpec{
			{Name: "big.txt", TargetBytes: 420000, Template: template},
		},
	})
	if err != nil {
		t.Fatalf("ComputePlan failed: %v", err)
	}

	f := result.Files[0]
	if f.PredictedLines != 4720 {
		t.Errorf("lines: expected 4720, got %d", f.PredictedLines)
	}
	if f.PredictedBytes != 420080 {
		t.Errorf("bytes: expected 420080, got %d", f.PredictedBytes)
	}

	// At most one line of overshoot past the target.
	overshoot := f.PredictedBytes - 420000
	if overshoot < 0 || overshoot >= int64(len(template)) {
		t.Errorf("overshoot %d outside [0, %d)", overshoot, len(template))
	}
}

// TestComputePlan_SmallFixture pins the count-driven small fixture: 18 lines,
// each the doubled numbered segment plus a newline. Lines 1-9 are 79 bytes
// (single-digit number), lines 10-18 are 81 bytes, 1440 bytes in total.
func TestComputePlan_SmallFixture(t *testing.T) {
	spec := pipeline.FileSpec{
		Name:     "small.txt",
		Lines:    18,
		Repeat:   2,
		Template: "This is line %d of the small test file. ",
	}

	result, err := ComputePlan(pipeline.PlanInput{Specs: []pipeline.FileSpec{spec}})
	if err != nil {
		t.Fatalf("ComputePlan failed: %v", err)
	}

	f := result.Files[0]
	if f.PredictedLines != 18 {
		t.Errorf("lines: expected 18, got %d", f.PredictedLines)
	}
	if f.PredictedBytes != 1440 {
		t.Errorf("bytes: expected 1440, got %d", f.PredictedBytes)
	}

	if got := spec.RenderLine(0); got != "This is line 1 of the small test file. This is line 1 of the small test file. \n" {
		t.Errorf("line 1: got %q", got)
	}
	if got := len(spec.RenderLine(9)); got != 81 {
		t.Errorf("line 10 length: expected 81, got %d", got)
	}
}

// TestComputePlan_ZeroTarget documents the boundary policy: the offset check
// runs before each write, so a target of 0 plans an empty file.
func TestComputePlan_ZeroTarget(t *testing.T) {
	result, err := ComputePlan(pipeline.PlanInput{
		Specs: []pipeline.FileSpec{
			{Name: "empty.txt", TargetBytes: 0, Template: "line\n"},
		},
	})
	if err != nil {
		t.Fatalf("ComputePlan failed: %v", err)
	}

	f := result.Files[0]
	if f.PredictedLines != 0 {
		t.Errorf("expected 0 lines, got %d", f.PredictedLines)
	}
	if f.PredictedBytes != 0 {
		t.Errorf("expected 0 bytes, got %d", f.PredictedBytes)
	}
}

func TestComputePlan_Validation(t *testing.T) {
	cases := []struct {
		name string
		spec pipeline.FileSpec
	}{
		{"empty name", pipeline.FileSpec{Template: "x\n", TargetBytes: 10}},
		{"empty template", pipeline.FileSpec{Name: "f.txt", TargetBytes: 10}},
		{"negative lines", pipeline.FileSpec{Name: "f.txt", Template: "x\n", Lines: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputePlan(pipeline.PlanInput{Specs: []pipeline.FileSpec{tc.spec}})
			if err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

// TestComputePlan_StandardSet plans the default small/medium/big set end to
// end through the Stage interface.
func TestComputePlan_StandardSet(t *testing.T) {
	stage := NewStage()

	result, err := stage.Execute(context.Background(), pipeline.PlanInput{
		OutputDir: ".",
		Specs:     fixturegen.StandardSpecs(),
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Files) != 3 {
		t.Fatalf("expected 3 planned files, got %d", len(result.Files))
	}

	expected := []struct {
		path  string
		lines int
		bytes int64
	}{
		{"small.txt", 18, 1440},
		{"medium.txt", 765, 51255},
		{"big.txt", 4720, 420080},
	}
	for i, exp := range expected {
		got := result.Files[i]
		if got.Path != exp.path {
			t.Errorf("files[%d].Path: expected %q, got %q", i, exp.path, got.Path)
		}
		if got.PredictedLines != exp.lines {
			t.Errorf("files[%d].PredictedLines: expected %d, got %d", i, exp.lines, got.PredictedLines)
		}
		if got.PredictedBytes != exp.bytes {
			t.Errorf("files[%d].PredictedBytes: expected %d, got %d", i, exp.bytes, got.PredictedBytes)
		}
	}
}
