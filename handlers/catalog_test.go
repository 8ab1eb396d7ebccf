package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"stayhub/handlers"
)

type fakeInvalidator struct {
	err    error
	called bool
}

func (f *fakeInvalidator) Invalidate(ctx context.Context) error {
	f.called = true
	return f.err
}

func catalogRouter(cache handlers.CatalogInvalidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewCatalogHandler(cache, zap.NewNop())
	r.POST("/api/catalog/invalidate", h.Invalidate)
	return r
}

func TestCatalogInvalidate_OK(t *testing.T) {
	cache := &fakeInvalidator{}
	r := catalogRouter(cache)

	w := doRequest(r, http.MethodPost, "/api/catalog/invalidate", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, cache.called)
	assert.Contains(t, w.Body.String(), `"invalidated":true`)
}

func TestCatalogInvalidate_CacheError(t *testing.T) {
	cache := &fakeInvalidator{err: errors.New("redis: connection refused")}
	r := catalogRouter(cache)

	w := doRequest(r, http.MethodPost, "/api/catalog/invalidate", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestCatalogInvalidate_NoCache(t *testing.T) {
	r := catalogRouter(nil)

	w := doRequest(r, http.MethodPost, "/api/catalog/invalidate", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"invalidated":false`)
}
