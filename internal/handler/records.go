package handler

import (
	"context"
	"net/http"

	"sheet-addresses-api/internal/metrics"
	"sheet-addresses-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RecordsHandler handles name/address requests
type RecordsHandler struct {
	service RecordService
}

// Service interface for dependency injection
type RecordService interface {
	GetRecords(context.Context, string) (*models.ResultSet, error)
}

// NewRecordsHandler creates a new records handler
func NewRecordsHandler(svc RecordService) *RecordsHandler {
	return &RecordsHandler{service: svc}
}

// GetData handles POST /api/get_data requests
//
// @Summary      Deduplicated name/address pairs of a spreadsheet
// @Description  The raw request body is the spreadsheet id. Rows A:C are read, the header is dropped and names are deduplicated (last row wins).
// @Accept       plain
// @Produce      plain
// @Param        spreadsheet_id  body      string  true  "Spreadsheet identifier"
// @Success      200             {object}  models.ResultSet
// @Failure      400             {object}  map[string]string
// @Failure      500             {object}  map[string]string
// @Router       /api/get_data [post]
func (h *RecordsHandler) GetData(c *gin.Context) {
	spreadsheetID, err := readSpreadsheetID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.GetRecords(c.Request.Context(), spreadsheetID)
	if err != nil {
		abortWithError(c, spreadsheetID, err)
		return
	}

	metrics.RecordsReturned.Observe(float64(len(result.Values)))
	writeText(c, result)
}
