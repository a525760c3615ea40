package gof

// Observation is a single category row: the count actually observed and
// the count expected under the null hypothesis.
type Observation struct {
	Category string  `json:"category"`
	Observed float64 `json:"observed"`
	Expected float64 `json:"expected"`
}

// TestConfig holds the tunable parameters of a goodness-of-fit run.
type TestConfig struct {
	// Alpha is the significance level, exclusive of 0 and 1.
	Alpha float64 `json:"alpha"`
}

// TestResult is the complete outcome of a chi-square goodness-of-fit test.
type TestResult struct {
	Statistic        float64 `json:"chi_square_statistic"`
	DegreesOfFreedom int     `json:"degrees_of_freedom"`
	PValue           float64 `json:"p_value"`
	CriticalValue    float64 `json:"critical_value"`
	RejectNull       bool    `json:"reject_null"`
	Alpha            float64 `json:"alpha"`
}

// Conclusion renders the decision as the sentence shown to the user.
func (r *TestResult) Conclusion() string {
	if r.RejectNull {
		return "Reject H0: the difference between observed and expected counts is statistically significant."
	}
	return "Fail to reject H0: the difference between observed and expected counts is not statistically significant."
}
