package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/optctl/internal/rollout"
)

func sampleResult() *rollout.Result {
	return &rollout.Result{
		States:    []rollout.State{{1, 0}, {0.9, -0.1}, {0.8, -0.2}},
		Controls:  []rollout.Control{{0.5}, {0.5}},
		Times:     []float64{0, 0.1, 0.2},
		Costs:     []float64{0.125, 0.125, 0},
		TotalCost: 0.25,
	}
}

func TestSaveAndList(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	id, err := s.Save("pendulum", 0.1, 0.2, 42, "euler", "constant", sampleResult())
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty run id")
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].System != "pendulum" {
		t.Errorf("expected system pendulum, got %s", runs[0].System)
	}
	if runs[0].TotalCost != 0.25 {
		t.Errorf("expected total cost 0.25, got %f", runs[0].TotalCost)
	}
}

func TestTrajectoryCSVLayout(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	id, err := s.Save("pendulum", 0.1, 0.2, 0, "euler", "constant", sampleResult())
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, id, "trajectory.csv"))
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	// Header plus one row per node, terminal included.
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}

	header := records[0]
	want := []string{"time", "x0", "x1", "u0", "cost"}
	if len(header) != len(want) {
		t.Fatalf("header width mismatch: %v", header)
	}
	for i, h := range want {
		if header[i] != h {
			t.Errorf("header[%d] = %s, expected %s", i, header[i], h)
		}
	}

	// The terminal row carries a zero control pad.
	terminal := records[3]
	if terminal[3] != "0" {
		t.Errorf("terminal control pad should be 0, got %s", terminal[3])
	}
}

func TestListEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing"))

	runs, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
