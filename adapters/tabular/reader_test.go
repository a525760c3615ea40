package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestRead_CSV(t *testing.T) {
	csvData := "Category,Observed,Expected\nA,10,20\nB,20,20\nC,30,20\n"

	table, err := Read(strings.NewReader(csvData), "counts.csv")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(table.Headers) != 3 {
		t.Fatalf("Expected 3 headers, got %d", len(table.Headers))
	}
	if table.Headers[0] != "Category" || table.Headers[2] != "Expected" {
		t.Errorf("Unexpected headers: %v", table.Headers)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.Rows))
	}
	if table.Rows[1]["Observed"] != "20" {
		t.Errorf("Expected row 1 Observed=20, got %q", table.Rows[1]["Observed"])
	}
}

func TestRead_CSVSkipsEmptyRows(t *testing.T) {
	csvData := "Category,Observed,Expected\nA,10,20\n,,\nB,20,20\n , , \n"

	table, err := Read(strings.NewReader(csvData), "counts.csv")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("Expected empty rows to be skipped, got %d rows", len(table.Rows))
	}
}

func TestRead_CSVToleratesRaggedRows(t *testing.T) {
	csvData := "Category,Observed,Expected\nA,10\nB,20,20,extra\n"

	table, err := Read(strings.NewReader(csvData), "counts.csv")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0]["Expected"] != "" {
		t.Errorf("Short row should leave trailing cells empty, got %q", table.Rows[0]["Expected"])
	}
}

func TestRead_CSVHeaderOnly(t *testing.T) {
	if _, err := Read(strings.NewReader("Category,Observed,Expected\n"), "counts.csv"); err == nil {
		t.Fatal("Expected error for header-only file")
	}
}

func TestRead_Excel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := [][]interface{}{
		{"Category", "Observed", "Expected"},
		{"A", 10, 20},
		{"B", 20, 20},
	}
	for i, row := range cells {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName failed: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("SetCellValue failed: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Failed to serialize workbook: %v", err)
	}

	table, err := Read(&buf, "counts.xlsx")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0]["Category"] != "A" {
		t.Errorf("Expected first row category A, got %q", table.Rows[0]["Category"])
	}
}

func TestRead_ExcelGarbage(t *testing.T) {
	if _, err := Read(strings.NewReader("not a workbook"), "counts.xlsx"); err == nil {
		t.Fatal("Expected error for invalid Excel content")
	}
}

func TestDetectColumnTypes(t *testing.T) {
	table := &Table{
		Headers: []string{"Category", "Observed", "Sparse", "Blank"},
		Rows: []RawRow{
			{"Category": "A", "Observed": "10", "Sparse": "1.5", "Blank": ""},
			{"Category": "B", "Observed": "20.5", "Sparse": "", "Blank": ""},
			{"Category": "7", "Observed": "-3", "Sparse": "x", "Blank": ""},
		},
	}

	types := DetectColumnTypes(table)

	expected := map[string]string{
		"Category": TypeText,    // mixed values, not fully numeric
		"Observed": TypeNumeric, // ints, floats, negatives all parse
		"Sparse":   TypeText,    // non-numeric cell wins
		"Blank":    TypeEmpty,
	}
	for header, want := range expected {
		if got := types[header]; got != want {
			t.Errorf("Column %s: expected %s, got %s", header, want, got)
		}
	}
}

func TestTableColumnAndHasHeader(t *testing.T) {
	table := &Table{
		Headers: []string{"Category", "Observed"},
		Rows: []RawRow{
			{"Category": "A", "Observed": "10"},
			{"Category": "B", "Observed": "20"},
		},
	}

	if !table.HasHeader("Observed") {
		t.Error("Expected HasHeader to find Observed")
	}
	if table.HasHeader("Missing") {
		t.Error("Did not expect HasHeader to find Missing")
	}

	column := table.Column("Category")
	if len(column) != 2 || column[0] != "A" || column[1] != "B" {
		t.Errorf("Unexpected column values: %v", column)
	}
}
