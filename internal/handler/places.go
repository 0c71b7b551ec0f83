package handler

import (
	"context"
	"net/http"

	"sheet-addresses-api/internal/models"

	"github.com/gin-gonic/gin"
)

// PlacesHandler handles address grouping requests
type PlacesHandler struct {
	service PlaceService
}

// PlaceService interface for dependency injection
type PlaceService interface {
	GetPlaces(context.Context, string) (*models.PlaceSet, error)
}

// NewPlacesHandler creates a new places handler
func NewPlacesHandler(svc PlaceService) *PlacesHandler {
	return &PlacesHandler{service: svc}
}

// GetPlaces handles POST /api/get_places requests
//
// @Summary      Names grouped by address
// @Description  Same input as /api/get_data; the deduplicated records are grouped by their address.
// @Accept       plain
// @Produce      plain
// @Param        spreadsheet_id  body      string  true  "Spreadsheet identifier"
// @Success      200             {object}  models.PlaceSet
// @Failure      400             {object}  map[string]string
// @Failure      500             {object}  map[string]string
// @Router       /api/get_places [post]
func (h *PlacesHandler) GetPlaces(c *gin.Context) {
	spreadsheetID, err := readSpreadsheetID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.GetPlaces(c.Request.Context(), spreadsheetID)
	if err != nil {
		abortWithError(c, spreadsheetID, err)
		return
	}

	writeText(c, result)
}
