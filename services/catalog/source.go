package catalog

import (
	"context"
	"time"

	"stayhub/models"
)

// Source supplies the room catalog and per-night availability that the
// search aggregator combines. Implementations must return exactly one
// AvailabilityRecord per (room, night) pair inside [start, end); the
// aggregator treats any missing record as unavailable.
type Source interface {
	FetchRooms(ctx context.Context) ([]models.Room, error)
	FetchAvailability(ctx context.Context, start, end time.Time) ([]models.AvailabilityRecord, error)
}

// DateFormat is the calendar-date layout used across the catalog and
// the HTTP surface.
const DateFormat = "2006-01-02"

// Nights enumerates every night in [start, end), one entry per calendar
// day. The checkout day is excluded.
func Nights(start, end time.Time) []time.Time {
	var nights []time.Time
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}
