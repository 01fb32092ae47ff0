package main

import (
	"errors"
	"sort"

	"github.com/montanaflynn/stats"
)

// errNoScores is the single domain error. Its message doubles as the
// "error" field of the serialized error record, so batch callers can both
// inspect and report it.
var errNoScores = errors.New("No scores provided")

// Stats is the result record for one noise analysis. MSE and Bias are set
// only when a ground-truth target was supplied.
type Stats struct {
	Mean      float64   `json:"mean"`
	Median    float64   `json:"median"`
	StdDev    float64   `json:"std_dev"`
	Variance  float64   `json:"variance"`
	RawScores []float64 `json:"raw_scores"`
	MSE       *float64  `json:"mse,omitempty"`
	Bias      *float64  `json:"bias_component,omitempty"`
}

// calculateStatistics computes descriptive noise statistics over a set of
// judgment scores. Variance and standard deviation are population
// statistics (divisor n). With a target, the mean squared error against it
// is reported decomposed as bias^2 + variance.
func calculateStatistics(scores []float64, target *float64) (Stats, error) {
	if len(scores) == 0 {
		return Stats{}, errNoScores
	}

	mean, err := stats.Mean(scores)
	if err != nil {
		return Stats{}, err
	}
	variance, err := stats.PopulationVariance(scores)
	if err != nil {
		return Stats{}, err
	}
	stdDev, err := stats.StandardDeviationPopulation(scores)
	if err != nil {
		return Stats{}, err
	}

	s := append([]float64(nil), scores...)
	sort.Float64s(s)
	// Upper of the two middle elements for even-length input, not their
	// average. Reported unrounded since it is a selected element.
	median := s[len(s)/2]

	result := Stats{
		Mean:      round2(mean),
		Median:    median,
		StdDev:    round2(stdDev),
		Variance:  round2(variance),
		RawScores: scores,
	}

	if target != nil {
		bias := mean - *target
		mse := bias*bias + variance
		roundedBias := round2(bias)
		roundedMSE := round2(mse)
		result.Bias = &roundedBias
		result.MSE = &roundedMSE
	}

	return result, nil
}

func round2(v float64) float64 {
	r, err := stats.Round(v, 2)
	if err != nil {
		return v
	}
	return r
}
