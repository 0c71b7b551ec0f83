package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVRepository serves rows from a local CSV export of a sheet.
// The spreadsheet id passed to FetchRows is the path of the file.
type CSVRepository struct{}

// NewCSVRepository creates a new CSV repository
func NewCSVRepository() *CSVRepository {
	return &CSVRepository{}
}

// FetchRows reads every record of the file and keeps the columns named by cellRange (e.g. "A:C").
func (r *CSVRepository) FetchRows(ctx context.Context, path, cellRange string) ([][]string, error) {
	first, last, err := parseColumnRange(cellRange)
	if err != nil {
		return nil, fmt.Errorf("repository: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("repository: failed to read record: %w", err)
		}

		rows = append(rows, sliceColumns(record, first, last))
	}

	return rows, nil
}

func sliceColumns(record []string, first, last int) []string {
	if first >= len(record) {
		return []string{}
	}
	end := last + 1
	if end > len(record) {
		end = len(record)
	}
	return record[first:end]
}

// parseColumnRange converts an A1 column range such as "A:C" into zero-based inclusive bounds.
func parseColumnRange(cellRange string) (int, int, error) {
	from, to, ok := strings.Cut(strings.ToUpper(cellRange), ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid column range %q", cellRange)
	}

	first, err := columnIndex(from)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column range %q: %w", cellRange, err)
	}
	last, err := columnIndex(to)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column range %q: %w", cellRange, err)
	}
	if last < first {
		return 0, 0, fmt.Errorf("invalid column range %q: columns out of order", cellRange)
	}

	return first, last, nil
}

func columnIndex(col string) (int, error) {
	if col == "" {
		return 0, errors.New("empty column")
	}
	n := 0
	for _, c := range col {
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("bad column %q", col)
		}
		n = n*26 + int(c-'A'+1)
	}
	return n - 1, nil
}
