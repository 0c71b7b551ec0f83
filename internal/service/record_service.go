package service

import (
	"context"
	"errors"
	"fmt"

	"sheet-addresses-api/internal/models"
)

// SheetRange is the block of cells read from every spreadsheet: name, region, locality.
const SheetRange = "A:C"

// ErrEmptySpreadsheetID is returned when no spreadsheet identifier was supplied.
var ErrEmptySpreadsheetID = errors.New("spreadsheet id cannot be empty")

// RecordService turns spreadsheet rows into deduplicated name/address records
type RecordService struct {
	repo RowRepository
}

// RowRepository interface for dependency injection
type RowRepository interface {
	FetchRows(ctx context.Context, spreadsheetID, cellRange string) ([][]string, error)
}

// NewRecordService creates a new record service
func NewRecordService(repo RowRepository) *RecordService {
	return &RecordService{repo: repo}
}

// GetRecords fetches the sheet and returns one record per distinct normalized name.
// Any failure aborts the whole call; no partial result is returned.
func (s *RecordService) GetRecords(ctx context.Context, spreadsheetID string) (*models.ResultSet, error) {
	rows, err := s.fetch(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	}

	return &models.ResultSet{Values: BuildRecords(rows)}, nil
}

// GetPlaces fetches the sheet and groups the deduplicated names by address.
func (s *RecordService) GetPlaces(ctx context.Context, spreadsheetID string) (*models.PlaceSet, error) {
	rows, err := s.fetch(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	}

	return &models.PlaceSet{Places: GroupByAddress(BuildRecords(rows))}, nil
}

func (s *RecordService) fetch(ctx context.Context, spreadsheetID string) ([]models.Row, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("service: %w", ErrEmptySpreadsheetID)
	}

	values, err := s.repo.FetchRows(ctx, spreadsheetID, SheetRange)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch rows: %w", err)
	}

	rows, err := ParseRows(values)
	if err != nil {
		return nil, err
	}

	return rows, nil
}
