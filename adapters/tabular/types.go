package tabular

import (
	"strconv"
	"strings"
)

// RawRow represents a row of raw tabular data as string key-value pairs
type RawRow map[string]string

// Table represents a complete parsed dataset
type Table struct {
	Headers []string // Column headers, in file order
	Rows    []RawRow // Data rows keyed by header
}

// Column type labels
const (
	TypeNumeric = "numeric"
	TypeText    = "text"
	TypeEmpty   = "empty"
)

// Column returns the raw cell values of a single column, in row order.
func (t *Table) Column(header string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[header]
	}
	return values
}

// HasHeader reports whether the table contains the given column.
func (t *Table) HasHeader(header string) bool {
	for _, h := range t.Headers {
		if h == header {
			return true
		}
	}
	return false
}

// DetectColumnTypes classifies each column as numeric, text, or empty.
// A column is numeric when every non-empty cell parses as a float and at
// least one cell is non-empty; missing cells alone never make a column
// numeric.
func DetectColumnTypes(table *Table) map[string]string {
	types := make(map[string]string, len(table.Headers))
	for _, header := range table.Headers {
		types[header] = classifyColumn(table.Column(header))
	}
	return types
}

func classifyColumn(values []string) string {
	nonEmpty := 0
	numeric := 0
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		nonEmpty++
		if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
			numeric++
		}
	}
	if nonEmpty == 0 {
		return TypeEmpty
	}
	if numeric == nonEmpty {
		return TypeNumeric
	}
	return TypeText
}
