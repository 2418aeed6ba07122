package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/krish-p25/invoice-generator/internal/domain/entity"
	"go.uber.org/zap"
)

// ParseResult carries the validated rows of one uploaded file together
// with every row-level validation error. Errors are collected, never
// thrown: a bad row can not abort ingestion.
type ParseResult struct {
	Rows    []entity.CSVRow   `json:"rows"`
	Errors  []entity.RowError `json:"errors"`
	Headers []string          `json:"headers"`
}

// Parser reads and validates uploaded invoice CSV files.
type Parser struct {
	logger *zap.Logger
}

// NewParser creates a CSV parser.
func NewParser(logger *zap.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse reads an entire CSV document. A file-level failure (unreadable or
// structurally malformed input) returns an error and no rows; row-level
// problems are reported in the result instead.
func (p *Parser) Parse(r io.Reader) (*ParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		p.logger.Error("Failed to read CSV file", zap.Error(err))
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers := normalizeHeaders(records[0])
	columnIndex := make(map[string]int, len(headers))
	for i, h := range headers {
		columnIndex[h] = i
	}

	result := &ParseResult{Headers: headers}

	for i, record := range records[1:] {
		if isEmptyRecord(record) {
			continue
		}
		// +2 accounts for the header row and 1-based file rows.
		fileRow := i + 2

		var row entity.CSVRow
		var missing []string

		for _, m := range columnMappings {
			value := ""
			if idx, ok := columnIndex[strings.ToLower(m.header)]; ok && idx < len(record) {
				value = strings.TrimSpace(record[idx])
			}
			m.assign(&row, value)

			if m.required && value == "" {
				missing = append(missing, m.header)
			}
			if m.validate != nil && value != "" && !m.validate(value) {
				result.Errors = append(result.Errors, entity.RowError{
					Row:     fileRow,
					Kind:    entity.ErrKindInvalidValue,
					Message: fmt.Sprintf("invalid value for %q: %s", m.header, value),
				})
			}
		}

		if len(missing) > 0 {
			result.Errors = append(result.Errors, entity.RowError{
				Row:     fileRow,
				Kind:    entity.ErrKindMissingFields,
				Message: fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")),
			})
			continue
		}

		result.Rows = append(result.Rows, row)
	}

	p.logger.Debug("Parsed CSV upload",
		zap.Int("rows", len(result.Rows)),
		zap.Int("errors", len(result.Errors)))

	return result, nil
}

// normalizeHeaders lowercases and trims header cells so column matching is
// case- and whitespace-insensitive.
func normalizeHeaders(record []string) []string {
	headers := make([]string, len(record))
	for i, h := range record {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return headers
}

func isEmptyRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
