package main

import (
	"fmt"
	"os"
	"strconv"
)

// scoresFromEnv reads the NOISE_SCORES fallback. The second return reports
// whether the variable was set at all; a set-but-blank value is a valid
// (empty) score set and flows through to the calculator.
func scoresFromEnv() ([]float64, bool, error) {
	raw, ok := os.LookupEnv("NOISE_SCORES")
	if !ok {
		return nil, false, nil
	}
	values, err := parseScoreList(raw)
	if err != nil {
		return nil, true, fmt.Errorf("NOISE_SCORES: %w", err)
	}
	return values, true, nil
}

// targetFromEnv reads the NOISE_TARGET fallback; nil means no target.
func targetFromEnv() (*float64, error) {
	raw := os.Getenv("NOISE_TARGET")
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("NOISE_TARGET: invalid value %q", raw)
	}
	return &v, nil
}
