// Package render — run report.
// Serializes the outcome of a whole run (every language variant of every
// story, failures included) as indented JSON for downstream tooling.
package render

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gaurav-prasanna/storyfetch/core"
)

// Report is the machine-readable summary of one run.
type Report struct {
	GeneratedAt string             `json:"generated_at"` // ISO8601
	Succeeded   int                `json:"succeeded"`
	Failed      int                `json:"failed"`
	Results     []core.StoryResult `json:"results"`
}

// BuildReport assembles a Report from run results.
func BuildReport(results []core.StoryResult) Report {
	report := Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Results:     results,
	}
	for _, r := range results {
		if r.OK {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}
	return report
}

// RenderReport marshals the report for writing to disk.
func RenderReport(report Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}
	return data, nil
}
