package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSpreadsheetID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "bare id", input: "1AbCdEf", want: "1AbCdEf"},
		{name: "bare id with whitespace", input: " 1AbCdEf\n", want: "1AbCdEf"},
		{name: "edit link", input: "https://docs.google.com/spreadsheets/d/1AbCdEf/edit#gid=0", want: "1AbCdEf"},
		{name: "explicit port 443", input: "https://docs.google.com:443/spreadsheets/d/1AbCdEf", want: "1AbCdEf"},
		{name: "empty", input: "", wantErr: ErrEmptySpreadsheetID},
		{name: "plain http", input: "http://docs.google.com/spreadsheets/d/1AbCdEf", wantErr: ErrInvalidSheetLink},
		{name: "other host", input: "https://example.com/spreadsheets/d/1AbCdEf", wantErr: ErrInvalidSheetLink},
		{name: "other port", input: "https://docs.google.com:8443/spreadsheets/d/1AbCdEf", wantErr: ErrInvalidSheetLink},
		{name: "document link", input: "https://docs.google.com/document/d/1AbCdEf", wantErr: ErrInvalidSheetLink},
		{name: "missing id", input: "https://docs.google.com/spreadsheets/d/", wantErr: ErrInvalidSheetLink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractSpreadsheetID(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
