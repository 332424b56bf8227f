package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spacesedan/reviewlens/internal/models"
)

// ErrMissingColumn is returned when the header lacks the review text column.
var ErrMissingColumn = errors.New("ingest: missing column")

// Columns names the header fields mapped onto a ReviewRecord.
// Product and Label are optional; Text is required.
type Columns struct {
	Text    string `yaml:"textColumn"`
	Product string `yaml:"productColumn"`
	Label   string `yaml:"labelColumn"`
}

func DefaultColumns() Columns {
	return Columns{
		Text:    "review_content",
		Product: "product_name",
		Label:   "sentiment_result",
	}
}

// ReadCSV parses a header-led CSV into review records. Header matching is
// case-insensitive and ignores surrounding whitespace.
func ReadCSV(r io.Reader, cols Columns) ([]models.ReviewRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %q (empty file)", ErrMissingColumn, cols.Text)
	}
	if err != nil {
		return nil, fmt.Errorf("ingest: reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		// A UTF-8 BOM is common in spreadsheet exports.
		h = strings.TrimPrefix(h, "\ufeff")
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	lookup := func(name string) int {
		if name == "" {
			return -1
		}
		if i, ok := index[strings.ToLower(strings.TrimSpace(name))]; ok {
			return i
		}
		return -1
	}

	textIdx := lookup(cols.Text)
	if textIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cols.Text)
	}
	productIdx := lookup(cols.Product)
	labelIdx := lookup(cols.Label)

	var records []models.ReviewRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: reading records: %w", err)
		}
		records = append(records, models.ReviewRecord{
			ProductName: field(row, productIdx),
			Text:        field(row, textIdx),
			Label:       strings.TrimSpace(field(row, labelIdx)),
		})
	}
	return records, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
