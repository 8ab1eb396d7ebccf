package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stayhub/handlers"
	"stayhub/models"
	"stayhub/services/catalog"
	"stayhub/services/search"
)

type failingSource struct{}

func (failingSource) FetchRooms(ctx context.Context) ([]models.Room, error) {
	return nil, errors.New("connection refused")
}

func (failingSource) FetchAvailability(ctx context.Context, start, end time.Time) ([]models.AvailabilityRecord, error) {
	return nil, errors.New("connection refused")
}

func searchRouter(source catalog.Source) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewSearchHandler(search.NewAggregator(source, zap.NewNop()), zap.NewNop())
	r.POST("/api/search", h.Search)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchEndpoint_OK(t *testing.T) {
	r := searchRouter(catalog.NewStaticSource(nil))

	w := doRequest(r, http.MethodPost, "/api/search", `{"startDate":"2025-01-01","endDate":"2025-01-03","guests":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                `json:"success"`
		Data    []models.RoomResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotEmpty(t, resp.Data)
	for _, result := range resp.Data {
		assert.GreaterOrEqual(t, result.Room.Capacity, 2)
		assert.Len(t, result.Availability, 2)
	}
}

func TestSearchEndpoint_MissingDates(t *testing.T) {
	r := searchRouter(catalog.NewStaticSource(nil))

	w := doRequest(r, http.MethodPost, "/api/search", `{"endDate":"2025-01-03"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestSearchEndpoint_EndBeforeStart(t *testing.T) {
	r := searchRouter(catalog.NewStaticSource(nil))

	w := doRequest(r, http.MethodPost, "/api/search", `{"startDate":"2025-01-03","endDate":"2025-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchEndpoint_BadBody(t *testing.T) {
	r := searchRouter(catalog.NewStaticSource(nil))

	w := doRequest(r, http.MethodPost, "/api/search", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchEndpoint_UpstreamFailure(t *testing.T) {
	r := searchRouter(failingSource{})

	w := doRequest(r, http.MethodPost, "/api/search", `{"startDate":"2025-01-01","endDate":"2025-01-03"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
