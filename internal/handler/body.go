// Package handler parses HTTP requests, calls the record service and
// writes its result back as text/plain JSON.
package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"sheet-addresses-api/internal/metrics"
	"sheet-addresses-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrInvalidEncoding is returned when the request body is not valid UTF-8.
var ErrInvalidEncoding = errors.New("request body is not valid UTF-8")

// readSpreadsheetID returns the raw request body as the spreadsheet identifier.
func readSpreadsheetID(c *gin.Context) (string, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", fmt.Errorf("handler: failed to read body: %w", err)
	}
	if !utf8.Valid(body) {
		return "", ErrInvalidEncoding
	}
	return string(body), nil
}

// writeText serializes v as compact JSON with non-ASCII and HTML characters
// left unescaped, and sends it as text/plain.
func writeText(c *gin.Context, v interface{}) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Data(http.StatusOK, "text/plain", bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// abortWithError maps service failures to a status code. Anything but a
// missing id is an upstream failure and yields no partial result.
func abortWithError(c *gin.Context, spreadsheetID string, err error) {
	switch {
	case errors.Is(err, service.ErrEmptySpreadsheetID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing spreadsheet id in request body"})
	default:
		metrics.UpstreamFailuresTotal.Inc()
		log.Error().
			Err(err).
			Str("spreadsheet_id", spreadsheetID).
			Str("path", c.FullPath()).
			Msg("failed to build records")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
