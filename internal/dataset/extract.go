package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"gofit/adapters/tabular"
	"gofit/domain/gof"
	"gofit/internal/errors"
)

// ColumnSelection names which table columns feed the test.
type ColumnSelection struct {
	Category string `json:"category_column"`
	Observed string `json:"observed_column"`
	Expected string `json:"expected_column"`
}

// Extract validates the column selection against the table and coerces the
// selected columns into observation rows. Rejection rules follow the
// upload contract: all three columns must be selected and present,
// observed and expected must be distinct numeric columns, and neither may
// contain missing values.
func Extract(table *tabular.Table, sel ColumnSelection) ([]gof.Observation, error) {
	if sel.Category == "" || sel.Observed == "" || sel.Expected == "" {
		return nil, errors.ValidationError("please select category, observed, and expected columns")
	}
	if sel.Observed == sel.Expected {
		return nil, errors.ValidationError("observed and expected columns cannot be the same")
	}
	for _, column := range []string{sel.Category, sel.Observed, sel.Expected} {
		if !table.HasHeader(column) {
			return nil, errors.ValidationError(fmt.Sprintf("column %q does not exist in the dataset", column))
		}
	}

	types := tabular.DetectColumnTypes(table)
	if types[sel.Observed] != tabular.TypeNumeric {
		return nil, errors.ValidationError(fmt.Sprintf("column %q must be numeric", sel.Observed))
	}
	if types[sel.Expected] != tabular.TypeNumeric {
		return nil, errors.ValidationError(fmt.Sprintf("column %q must be numeric", sel.Expected))
	}

	observations := make([]gof.Observation, 0, len(table.Rows))
	for i, row := range table.Rows {
		observed, err := parseCell(row[sel.Observed], sel.Observed, i)
		if err != nil {
			return nil, err
		}
		expected, err := parseCell(row[sel.Expected], sel.Expected, i)
		if err != nil {
			return nil, err
		}
		observations = append(observations, gof.Observation{
			Category: strings.TrimSpace(row[sel.Category]),
			Observed: observed,
			Expected: expected,
		})
	}

	return observations, nil
}

func parseCell(raw, column string, rowIndex int) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errors.ValidationError(fmt.Sprintf("column %q contains missing values (row %d); please clean your data", column, rowIndex+1))
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, errors.ValidationError(fmt.Sprintf("column %q contains a non-numeric value %q (row %d)", column, trimmed, rowIndex+1))
	}
	return value, nil
}
