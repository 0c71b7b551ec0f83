package service

import (
	"errors"
	"net/url"
	"strings"
)

// ErrInvalidSheetLink is returned when a link does not point at a Google spreadsheet.
var ErrInvalidSheetLink = errors.New("incorrect sheet link")

// ExtractSpreadsheetID accepts either a bare spreadsheet id or a
// https://docs.google.com/spreadsheets/d/<id>/... link and returns the id.
func ExtractSpreadsheetID(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptySpreadsheetID
	}
	if !strings.Contains(s, "://") {
		return s, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", ErrInvalidSheetLink
	}
	if u.Scheme != "https" || u.Hostname() != "docs.google.com" {
		return "", ErrInvalidSheetLink
	}
	if port := u.Port(); port != "" && port != "443" {
		return "", ErrInvalidSheetLink
	}

	parts := strings.Split(u.Path, "/")
	if len(parts) < 4 || parts[0] != "" || parts[1] != "spreadsheets" || parts[2] != "d" || parts[3] == "" {
		return "", ErrInvalidSheetLink
	}

	return parts[3], nil
}
