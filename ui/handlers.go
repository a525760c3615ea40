package ui

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gofit/adapters/tabular"
	"gofit/domain/gof"
	"gofit/internal"
	"gofit/internal/charts"
	"gofit/internal/dataset"
	"gofit/internal/errors"
)

// TestRequest is the body of POST /api/test. Either Rows (manual entry) or
// DatasetID plus a column selection (uploaded file) must be provided.
type TestRequest struct {
	DatasetID string  `json:"dataset_id"`
	Category  string  `json:"category_column"`
	Observed  string  `json:"observed_column"`
	Expected  string  `json:"expected_column"`
	Alpha     float64 `json:"alpha"`

	Rows []gof.Observation `json:"rows"`
}

// TestResponse carries everything the results panel renders.
type TestResponse struct {
	Result       *gof.TestResult   `json:"result"`
	Conclusion   string            `json:"conclusion"`
	Profile      *dataset.Profile  `json:"profile"`
	Rows         []gof.Observation `json:"rows"`
	BarChart     string            `json:"bar_chart"`
	DensityChart string            `json:"density_chart"`
}

// UploadResponse describes a parsed upload so the page can offer column
// selection and a preview.
type UploadResponse struct {
	DatasetID   string            `json:"dataset_id"`
	Filename    string            `json:"filename"`
	Headers     []string          `json:"headers"`
	ColumnTypes map[string]string `json:"column_types"`
	RowCount    int               `json:"row_count"`
	Preview     [][]string        `json:"preview"`
}

const previewRows = 5

// handleIndex renders the calculator page with manual-entry defaults.
func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"DefaultAlpha": s.config.Test.DefaultAlpha,
		"DefaultRows": []gof.Observation{
			{Category: "A", Observed: 10, Expected: 20},
			{Category: "B", Observed: 20, Expected: 20},
			{Category: "C", Observed: 30, Expected: 20},
		},
	})
}

// handleFileUpload handles dataset file uploads
func (s *Server) handleFileUpload(c *gin.Context) {
	internal.DefaultLogger.Debug("[handleFileUpload] Starting file upload process")

	file, header, err := c.Request.FormFile("dataset")
	if err != nil {
		internal.DefaultLogger.Error("[handleFileUpload] FAILED - No file uploaded: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	maxFileSize := s.config.Upload.MaxFileSizeBytes()
	if header.Size > maxFileSize {
		internal.DefaultLogger.Error("[handleFileUpload] FAILED - File too large: %d bytes", header.Size)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("File size (%.1f MB) exceeds the %dMB limit",
			float64(header.Size)/(1024*1024), s.config.Upload.MaxFileSizeMB)})
		return
	}

	filename := header.Filename
	if !hasValidExtension(filename) {
		internal.DefaultLogger.Error("[handleFileUpload] FAILED - Invalid file extension: %s", filename)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only Excel (.xlsx, .xls) and CSV (.csv) files are allowed"})
		return
	}

	if contentType := header.Header.Get("Content-Type"); !isExpectedMimeType(contentType) {
		// Some systems misreport spreadsheet MIME types; log but accept.
		internal.DefaultLogger.Warn("[handleFileUpload] Unexpected MIME type: %s for file: %s", contentType, filename)
	}

	table, err := tabular.Read(file, filename)
	if err != nil {
		internal.DefaultLogger.Error("[handleFileUpload] FAILED - Parse error: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("Error loading file: %v", err)})
		return
	}

	entry := s.store.Put(filename, table)
	internal.DefaultLogger.Info("[handleFileUpload] Stored dataset %s (%s, %d rows)", entry.ID, filename, len(table.Rows))

	c.JSON(http.StatusOK, UploadResponse{
		DatasetID:   entry.ID,
		Filename:    filename,
		Headers:     table.Headers,
		ColumnTypes: tabular.DetectColumnTypes(table),
		RowCount:    len(table.Rows),
		Preview:     previewOf(table),
	})
}

// handleRunTest validates the request, runs the goodness-of-fit test, and
// returns the result with both rendered charts.
func (s *Server) handleRunTest(c *gin.Context) {
	var req TestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request body: %v", err)})
		return
	}

	rows := req.Rows
	if len(rows) == 0 {
		if req.DatasetID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Provide manual rows or an uploaded dataset id"})
			return
		}
		entry, err := s.store.Get(req.DatasetID)
		if err != nil {
			respondError(c, err)
			return
		}
		rows, err = dataset.Extract(entry.Table, dataset.ColumnSelection{
			Category: req.Category,
			Observed: req.Observed,
			Expected: req.Expected,
		})
		if err != nil {
			respondError(c, err)
			return
		}
	}

	alpha := req.Alpha
	if alpha == 0 {
		alpha = s.config.Test.DefaultAlpha
	}

	result, err := s.calculator.Compute(rows, gof.TestConfig{Alpha: alpha})
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := dataset.Summarize(rows)
	if err != nil {
		respondError(c, errors.Wrap(err, "failed to summarize rows"))
		return
	}

	internal.DefaultLogger.Info("[handleRunTest] chi2=%.4f df=%d p=%.4f crit=%.4f reject=%v",
		result.Statistic, result.DegreesOfFreedom, result.PValue, result.CriticalValue, result.RejectNull)

	c.JSON(http.StatusOK, TestResponse{
		Result:       result,
		Conclusion:   result.Conclusion(),
		Profile:      profile,
		Rows:         rows,
		BarChart:     charts.BarChart(rows),
		DensityChart: charts.DensityChart(result),
	})
}

// respondError maps AppError codes onto HTTP statuses and an inline message.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput, errors.CodeValidationError:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
}

func hasValidExtension(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range []string{".xlsx", ".xls", ".csv"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func isExpectedMimeType(contentType string) bool {
	validMimeTypes := []string{
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", // .xlsx
		"application/vnd.ms-excel", // .xls
		"text/csv",
		"application/csv",
		"text/plain", // some CSV files are detected as plain text
	}
	for _, mimeType := range validMimeTypes {
		if contentType == mimeType {
			return true
		}
	}
	return strings.Contains(contentType, "excel") || strings.Contains(contentType, "csv")
}

func previewOf(table *tabular.Table) [][]string {
	n := len(table.Rows)
	if n > previewRows {
		n = previewRows
	}
	preview := make([][]string, n)
	for i := 0; i < n; i++ {
		cells := make([]string, len(table.Headers))
		for j, header := range table.Headers {
			cells[j] = table.Rows[i][header]
		}
		preview[i] = cells
	}
	return preview
}
