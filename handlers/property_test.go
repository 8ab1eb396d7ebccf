package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"stayhub/database/repository"
	"stayhub/handlers"
	"stayhub/services/pms"
)

type keylessStore struct{}

func (keylessStore) GetAPIKey(ctx context.Context, propertyID string) (string, error) {
	return "", fmt.Errorf("%w: property %s", repository.ErrNotFound, propertyID)
}

type downStore struct{}

func (downStore) GetAPIKey(ctx context.Context, propertyID string) (string, error) {
	return "", errors.New("get api key: connection refused")
}

func propertyRouter(store pms.CredentialLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewPropertyHandler(pms.NewClient("http://pms.test", store, zap.NewNop()), zap.NewNop())
	r.GET("/api/properties/:id", h.Details)
	return r
}

func TestPropertyDetails_UnknownProperty(t *testing.T) {
	r := propertyRouter(keylessStore{})

	w := doRequest(r, http.MethodGet, "/api/properties/prop-9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unknown property")
}

func TestPropertyDetails_CredentialStoreDown(t *testing.T) {
	r := propertyRouter(downStore{})

	w := doRequest(r, http.MethodGet, "/api/properties/prop-1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
