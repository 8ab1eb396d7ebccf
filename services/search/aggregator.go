package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"stayhub/models"
	"stayhub/services/catalog"
)

// Sentinel errors; handlers map these to HTTP statuses.
var (
	ErrMissingParameter = errors.New("startDate and endDate are required")
	ErrInvalidRange     = errors.New("startDate must be before endDate")
	ErrUpstream         = errors.New("catalog source unavailable")
)

// Aggregator combines the room catalog with per-night availability into
// one verdict per room. It keeps no state of its own; every search is a
// pure function over the source's answers.
type Aggregator struct {
	source catalog.Source
	logger *zap.Logger
}

// NewAggregator creates an Aggregator over the given catalog source.
func NewAggregator(source catalog.Source, logger *zap.Logger) *Aggregator {
	return &Aggregator{source: source, logger: logger}
}

// Search returns one RoomResult per room whose capacity fits the guest
// count. A room is available iff every night in [startDate, endDate)
// has an availability record marked available; a missing record counts
// as unavailable. guests defaults to 1 when zero or negative.
func (a *Aggregator) Search(ctx context.Context, startDate, endDate string, guests int) ([]models.RoomResult, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if guests <= 0 {
		guests = 1
	}

	rooms, err := a.source.FetchRooms(ctx)
	if err != nil {
		a.logger.Error("fetch rooms failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	records, err := a.source.FetchAvailability(ctx, start, end)
	if err != nil {
		a.logger.Error("fetch availability failed",
			zap.String("startDate", startDate),
			zap.String("endDate", endDate),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	byRoomDate := make(map[string]models.AvailabilityRecord, len(records))
	for _, rec := range records {
		byRoomDate[rec.RoomID+"|"+rec.Date] = rec
	}

	nights := catalog.Nights(start, end)

	results := make([]models.RoomResult, 0, len(rooms))
	for _, room := range rooms {
		if room.Capacity < guests {
			continue
		}

		available := true
		perNight := make([]models.AvailabilityRecord, 0, len(nights))
		for _, night := range nights {
			date := night.Format(catalog.DateFormat)
			rec, ok := byRoomDate[room.ID+"|"+date]
			if !ok {
				// Absence of a record never means availability.
				rec = models.AvailabilityRecord{RoomID: room.ID, Date: date}
			}
			if !rec.IsAvailable {
				available = false
			}
			perNight = append(perNight, rec)
		}

		results = append(results, models.RoomResult{
			Room:         room,
			Availability: perNight,
			IsAvailable:  available,
		})
	}

	return results, nil
}

func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	if startDate == "" || endDate == "" {
		return time.Time{}, time.Time{}, ErrMissingParameter
	}
	start, err := time.Parse(catalog.DateFormat, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad startDate %q", ErrMissingParameter, startDate)
	}
	end, err := time.Parse(catalog.DateFormat, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad endDate %q", ErrMissingParameter, endDate)
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return start, end, nil
}
