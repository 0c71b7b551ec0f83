package service

import (
	"errors"
	"fmt"
	"strings"

	"sheet-addresses-api/internal/models"
)

// ErrShortRow is returned when a data row has fewer than three cells.
var ErrShortRow = errors.New("row has fewer than 3 cells")

// NormalizeName trims the name, collapses internal whitespace runs to a single space and lowercases it.
func NormalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// NormalizeField trims and lowercases a region or locality. Internal whitespace is kept.
func NormalizeField(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Address builds the address string for a row
func Address(row models.Row) string {
	return NormalizeField(row.Region) + " " + NormalizeField(row.Locality)
}

// ParseRows drops the header row and converts the remaining cells into rows.
// A single short row fails the whole batch.
func ParseRows(values [][]string) ([]models.Row, error) {
	if len(values) <= 1 {
		return []models.Row{}, nil
	}

	rows := make([]models.Row, 0, len(values)-1)
	for i, cells := range values[1:] {
		if len(cells) < 3 {
			// i+2: 1-based sheet row number, header included
			return nil, fmt.Errorf("service: sheet row %d: %w", i+2, ErrShortRow)
		}
		rows = append(rows, models.Row{
			Name:     cells[0],
			Region:   cells[1],
			Locality: cells[2],
		})
	}

	return rows, nil
}

// BuildRecords returns one record per distinct normalized name.
// A name keeps the position of its first row and the address of its last row.
func BuildRecords(rows []models.Row) []models.Record {
	records := make([]models.Record, 0, len(rows))
	index := make(map[string]int, len(rows))

	for _, row := range rows {
		name := NormalizeName(row.Name)
		address := Address(row)

		if i, ok := index[name]; ok {
			records[i].Address = address
			continue
		}
		index[name] = len(records)
		records = append(records, models.Record{Name: name, Address: address})
	}

	return records
}

// GroupByAddress collects the names sharing an address, in order of first appearance.
func GroupByAddress(records []models.Record) []models.Place {
	places := make([]models.Place, 0, len(records))
	index := make(map[string]int, len(records))

	for _, rec := range records {
		if i, ok := index[rec.Address]; ok {
			places[i].Names = append(places[i].Names, rec.Name)
			continue
		}
		index[rec.Address] = len(places)
		places = append(places, models.Place{Address: rec.Address, Names: []string{rec.Name}})
	}

	return places
}
