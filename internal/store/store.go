// Package store persists cost evaluation runs: one directory per run
// with JSON metadata and a CSV trajectory including the per-node cost.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/optctl/internal/rollout"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string    `json:"id"`
	System     string    `json:"system"`
	Timestamp  time.Time `json:"timestamp"`
	Seed       int64     `json:"seed"`
	Dt         float64   `json:"dt"`
	Duration   float64   `json:"duration"`
	Integrator string    `json:"integrator"`
	Controller string    `json:"controller"`
	TotalCost  float64   `json:"total_cost"`
}

// Save writes one run under a timestamped directory and returns its id.
func (s *Store) Save(system string, dt, duration float64, seed int64, integrator, controller string, result *rollout.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", system, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		System:     system,
		Timestamp:  time.Now(),
		Seed:       seed,
		Dt:         dt,
		Duration:   duration,
		Integrator: integrator,
		Controller: controller,
		TotalCost:  result.TotalCost,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(result.States) == 0 {
		return runID, nil
	}

	header := []string{"time"}
	for i := range result.States[0] {
		header = append(header, fmt.Sprintf("x%d", i))
	}

	numControls := 0
	if len(result.Controls) > 0 {
		numControls = len(result.Controls[0])
		for i := 0; i < numControls; i++ {
			header = append(header, fmt.Sprintf("u%d", i))
		}
	}
	header = append(header, "cost")

	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range result.States {
		row := []string{strconv.FormatFloat(result.Times[i], 'f', 6, 64)}

		for _, val := range result.States[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}

		// The terminal node has no control row; pad with zeros so every
		// record has the same width.
		if i < len(result.Controls) {
			for _, val := range result.Controls[i] {
				row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
			}
		} else {
			for j := 0; j < numControls; j++ {
				row = append(row, "0")
			}
		}

		if i < len(result.Costs) {
			row = append(row, strconv.FormatFloat(result.Costs[i], 'f', 6, 64))
		} else {
			row = append(row, "0")
		}

		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns the metadata of every stored run.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}
