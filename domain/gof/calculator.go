package gof

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"gofit/internal/errors"
)

// Calculator performs the chi-square goodness-of-fit test.
type Calculator struct{}

// NewCalculator creates a new goodness-of-fit calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Compute runs the test on the given rows at the configured significance
// level. It is a pure function of its inputs: the statistic is
// sum((observed-expected)^2 / expected), the p-value is the upper tail of
// the chi-square distribution with len(rows)-1 degrees of freedom, and the
// critical value is its quantile at 1-alpha.
func (c *Calculator) Compute(rows []Observation, cfg TestConfig) (*TestResult, error) {
	if err := validateInput(rows, cfg); err != nil {
		return nil, err
	}

	statistic := 0.0
	for _, row := range rows {
		diff := row.Observed - row.Expected
		statistic += diff * diff / row.Expected
	}

	df := len(rows) - 1
	dist := distuv.ChiSquared{K: float64(df)}

	result := &TestResult{
		Statistic:        statistic,
		DegreesOfFreedom: df,
		PValue:           dist.Survival(statistic),
		CriticalValue:    dist.Quantile(1 - cfg.Alpha),
		Alpha:            cfg.Alpha,
	}
	result.RejectNull = result.Statistic > result.CriticalValue

	return result, nil
}

// validateInput enforces the preconditions of the test: at least two
// categories, non-negative observed counts, strictly positive expected
// counts, and a significance level inside (0,1).
func validateInput(rows []Observation, cfg TestConfig) error {
	if len(rows) < 2 {
		return errors.InvalidInput(fmt.Sprintf("goodness-of-fit test needs at least 2 categories, got %d", len(rows)))
	}
	if cfg.Alpha <= 0 || cfg.Alpha >= 1 {
		return errors.InvalidInput(fmt.Sprintf("significance level must be in (0,1), got %g", cfg.Alpha))
	}
	for i, row := range rows {
		if row.Observed < 0 {
			return errors.InvalidInput(fmt.Sprintf("row %d (%s): observed count must be >= 0, got %g", i+1, row.Category, row.Observed))
		}
		if row.Expected <= 0 {
			return errors.InvalidInput(fmt.Sprintf("row %d (%s): expected count must be > 0, got %g", i+1, row.Category, row.Expected))
		}
	}
	return nil
}
