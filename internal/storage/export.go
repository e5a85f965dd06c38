package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/physlab/internal/sandbox"
)

// ExportData is the JSON export form of a recorded run.
type ExportData struct {
	Scene      string             `json:"scene"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Steps      int                `json:"steps"`
	Collisions int                `json:"collisions"`
	Times      []float64          `json:"times"`
	Positions  [][][3]float64     `json:"positions"`
	PerStep    []int              `json:"per_step_collisions"`
	Metrics    map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run as indented JSON.
func ExportJSON(out io.Writer, sceneName string, dt, duration float64, result *sandbox.Result) error {
	data := ExportData{
		Scene:      sceneName,
		Dt:         dt,
		Duration:   duration,
		Steps:      result.StepsTaken,
		Collisions: result.TotalCollisions,
		Times:      result.Times,
		Positions:  make([][][3]float64, len(result.Positions)),
		PerStep:    result.Collisions,
		Metrics:    result.Metrics,
	}

	for i, snapshot := range result.Positions {
		row := make([][3]float64, len(snapshot))
		for j, p := range snapshot {
			row[j] = [3]float64{p.X, p.Y, p.Z}
		}
		data.Positions[i] = row
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
