package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsRepository reads cell values through the Google Sheets v4 API
type SheetsRepository struct {
	svc *sheets.Service
}

// NewSheetsRepository creates a Sheets client authenticated with a static API key.
// Extra options (endpoint override, custom HTTP client) are passed through.
func NewSheetsRepository(ctx context.Context, apiKey string, opts ...option.ClientOption) (*SheetsRepository, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to create sheets service: %w", err)
	}

	return &SheetsRepository{svc: svc}, nil
}

// FetchRows returns the values of cellRange in the given spreadsheet, one string slice per row.
// Trailing empty cells are omitted by the API, so rows may be shorter than the range.
func (r *SheetsRepository) FetchRows(ctx context.Context, spreadsheetID, cellRange string) ([][]string, error) {
	resp, err := r.svc.Spreadsheets.Values.BatchGet(spreadsheetID).
		Ranges(cellRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to fetch values: %w", err)
	}

	if len(resp.ValueRanges) == 0 || resp.ValueRanges[0] == nil {
		return nil, fmt.Errorf("repository: response for range %q contains no value ranges", cellRange)
	}

	vr := resp.ValueRanges[0]
	rows := make([][]string, 0, len(vr.Values))
	for i, raw := range vr.Values {
		row := make([]string, 0, len(raw))
		for j, cell := range raw {
			s, ok := cell.(string)
			if !ok {
				return nil, fmt.Errorf("repository: cell (%d,%d) is %T, expected string", i, j, cell)
			}
			row = append(row, s)
		}
		rows = append(rows, row)
	}

	log.Debug().
		Str("spreadsheet_id", spreadsheetID).
		Str("range", vr.Range).
		Int("rows", len(rows)).
		Msg("fetched sheet values")

	return rows, nil
}
