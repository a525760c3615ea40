package dataset

import (
	"github.com/montanaflynn/stats"

	"gofit/domain/gof"
)

// ColumnSummary holds descriptive statistics for one count column.
type ColumnSummary struct {
	Total float64 `json:"total"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Profile summarizes the rows feeding a test, shown in the data preview.
type Profile struct {
	Categories int           `json:"categories"`
	Observed   ColumnSummary `json:"observed"`
	Expected   ColumnSummary `json:"expected"`
}

// Summarize computes descriptive statistics for the observed and expected
// columns of the given rows.
func Summarize(rows []gof.Observation) (*Profile, error) {
	observed := make([]float64, len(rows))
	expected := make([]float64, len(rows))
	for i, row := range rows {
		observed[i] = row.Observed
		expected[i] = row.Expected
	}

	observedSummary, err := summarizeColumn(observed)
	if err != nil {
		return nil, err
	}
	expectedSummary, err := summarizeColumn(expected)
	if err != nil {
		return nil, err
	}

	return &Profile{
		Categories: len(rows),
		Observed:   *observedSummary,
		Expected:   *expectedSummary,
	}, nil
}

func summarizeColumn(data []float64) (*ColumnSummary, error) {
	total, err := stats.Sum(data)
	if err != nil {
		return nil, err
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return nil, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return nil, err
	}

	return &ColumnSummary{Total: total, Mean: mean, Min: min, Max: max}, nil
}
