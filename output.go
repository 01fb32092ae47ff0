package main

import (
	"errors"

	json "github.com/goccy/go-json"
)

type errorReport struct {
	Error string `json:"error"`
}

// renderReport runs the calculation and serializes the outcome as indented
// JSON. An empty score set produces the structured error record rather than
// a failure: it is a data-quality result, not a tool fault.
func renderReport(scores []float64, target *float64) ([]byte, error) {
	result, err := calculateStatistics(scores, target)
	if err != nil {
		if errors.Is(err, errNoScores) {
			return json.MarshalIndent(errorReport{Error: err.Error()}, "", "  ")
		}
		return nil, err
	}
	return json.MarshalIndent(result, "", "  ")
}
