package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Read parses CSV or Excel content from an in-memory reader. The filename
// is only used to pick the format by extension, so it works for multipart
// uploads that never touch disk.
func Read(reader io.Reader, filename string) (*Table, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".csv" {
		return readCSVData(reader)
	}
	return readExcelData(reader)
}

// readExcelData reads rows from the first sheet of an Excel workbook
func readExcelData(reader io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file contains no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("Excel file must have at least a header row and one data row")
	}

	return processRows(rows, "xlsx")
}

// readCSVData reads CSV data into structured format
func readCSVData(reader io.Reader) (*Table, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1 // tolerate ragged rows, like the Excel path
	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("CSV file must have at least a header row and one data row")
	}

	return processRows(rows, "csv")
}

// processRows converts raw string rows into Table format
func processRows(rows [][]string, fileType string) (*Table, error) {
	// Extract headers from first row
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	// Extract data rows, skipping fully empty trailing rows
	var dataRows []RawRow
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(RawRow)
		empty := true

		for j, cell := range row {
			if j < len(headers) {
				trimmed := strings.TrimSpace(cell)
				rowData[headers[j]] = trimmed
				if trimmed != "" {
					empty = false
				}
			}
		}

		if !empty {
			dataRows = append(dataRows, rowData)
		}
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(fileType), len(headers), len(dataRows))

	return &Table{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}
