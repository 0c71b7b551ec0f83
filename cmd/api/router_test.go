package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sheet-addresses-api/internal/handler"
	"sheet-addresses-api/internal/repository"
	"sheet-addresses-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

// newTestRouter wires the real layers against a fake Sheets API serving body.
func newTestRouter(t *testing.T, status int, body string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sheetsAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(sheetsAPI.Close)

	repo, err := repository.NewSheetsRepository(context.Background(), "test-key", option.WithEndpoint(sheetsAPI.URL+"/"))
	require.NoError(t, err)

	svc := service.NewRecordService(repo)
	return newRouter(handler.NewRecordsHandler(svc), handler.NewPlacesHandler(svc))
}

func TestRouter_GetData(t *testing.T) {
	r := newTestRouter(t, http.StatusOK, `{"valueRanges": [{"values": [
		["Name", "Region", "City"],
		["Alice ", "USA", "NYC"],
		["  John   Doe ", " New   York ", "Albany"],
		["Жанна", "Россия", "Москва"],
		["alice", "usa", "la"]
	]}]}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/get_data", strings.NewReader("sheet-1")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
	assert.Equal(t,
		`{"values":[{"name":"alice","address":"usa la"},{"name":"john doe","address":"new   york albany"},{"name":"жанна","address":"россия москва"}]}`,
		w.Body.String())
}

func TestRouter_GetData_ShortRowFailsWholeRequest(t *testing.T) {
	r := newTestRouter(t, http.StatusOK, `{"valueRanges": [{"values": [
		["Name", "Region", "City"],
		["Alice", "USA", "NYC"],
		["Bob", "USA"]
	]}]}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/get_data", strings.NewReader("sheet-1")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "values")
}

func TestRouter_GetData_UpstreamError(t *testing.T) {
	r := newTestRouter(t, http.StatusBadRequest, `{"error": {"code": 400, "message": "API key not valid.", "status": "INVALID_ARGUMENT"}}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/get_data", strings.NewReader("sheet-1")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRouter_GetPlaces(t *testing.T) {
	r := newTestRouter(t, http.StatusOK, `{"valueRanges": [{"values": [
		["Name", "Region", "City"],
		["Alice", "USA", "NYC"],
		["Bob", "usa", "nyc"]
	]}]}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/get_places", strings.NewReader("sheet-1")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"places":[{"address":"usa nyc","names":["alice","bob"]}]}`, w.Body.String())
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t, http.StatusOK, `{}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sheetapi_requests_total")
}

func TestRouter_GetDataRejectsGet(t *testing.T) {
	r := newTestRouter(t, http.StatusOK, `{}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/get_data", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
