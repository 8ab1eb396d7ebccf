package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/models"
	"stayhub/services/catalog"
)

func day(s string) time.Time {
	d, err := time.Parse(catalog.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNights(t *testing.T) {
	nights := catalog.Nights(day("2025-01-01"), day("2025-01-04"))
	require.Len(t, nights, 3)
	assert.Equal(t, "2025-01-01", nights[0].Format(catalog.DateFormat))
	assert.Equal(t, "2025-01-03", nights[2].Format(catalog.DateFormat))

	// Degenerate range holds zero nights.
	assert.Empty(t, catalog.Nights(day("2025-01-01"), day("2025-01-01")))
}

func TestStaticSource_OneRecordPerRoomNight(t *testing.T) {
	src := catalog.NewStaticSource(nil)
	ctx := context.Background()

	rooms, err := src.FetchRooms(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, rooms)

	records, err := src.FetchAvailability(ctx, day("2025-03-10"), day("2025-03-13"))
	require.NoError(t, err)
	assert.Len(t, records, len(rooms)*3)

	seen := map[string]bool{}
	for _, rec := range records {
		key := rec.RoomID + "|" + rec.Date
		assert.False(t, seen[key], "duplicate record for %s", key)
		seen[key] = true
	}
}

func TestStaticSource_Deterministic(t *testing.T) {
	src := catalog.NewStaticSource(nil)
	ctx := context.Background()

	first, err := src.FetchAvailability(ctx, day("2025-03-10"), day("2025-03-17"))
	require.NoError(t, err)
	second, err := src.FetchAvailability(ctx, day("2025-03-10"), day("2025-03-17"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStaticSource_CustomCatalog(t *testing.T) {
	rooms := []models.Room{{ID: "only", Name: "Only Room", Capacity: 2}}
	src := catalog.NewStaticSource(rooms)

	got, err := src.FetchRooms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rooms, got)
}
