package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// parseScoreList parses a comma or whitespace separated list of scores, as
// accepted in NOISE_SCORES. A blank string yields an empty, non-nil slice:
// emptiness is a question for the calculator, not the parser.
func parseScoreList(raw string) ([]float64, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid score %q", field)
		}
		values = append(values, v)
	}
	return values, nil
}

func checkFinite(values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite value %v", v)
		}
	}
	return nil
}
