package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stayhub/services/catalog"
	"stayhub/services/pms"
)

type oneKey string

func (k oneKey) GetAPIKey(ctx context.Context, propertyID string) (string, error) {
	return string(k), nil
}

func TestPMSSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/room-types"):
			w.Write([]byte(`[{"id":"rt-1","name":"Deluxe King","maxGuests":2}]`))
		case strings.HasSuffix(r.URL.Path, "/rate-plans"):
			// A published rate only for the first night: the second
			// night is closed.
			w.Write([]byte(`[{"roomTypeId":"rt-1","date":"2025-01-01","rate":250}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := pms.NewClient(srv.URL, oneKey("key"), zap.NewNop())
	source := catalog.NewPMSSource(client, "prop-1")
	ctx := context.Background()

	rooms, err := source.FetchRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "rt-1", rooms[0].ID)
	assert.Equal(t, 2, rooms[0].Capacity)

	records, err := source.FetchAvailability(ctx, day("2025-01-01"), day("2025-01-03"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].IsAvailable)
	assert.False(t, records[1].IsAvailable)
}
