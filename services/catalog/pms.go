package catalog

import (
	"context"
	"time"

	"stayhub/models"
	"stayhub/services/pms"
)

// PMSSource adapts the property-management client to the Source
// contract so the aggregator can search live data for one property.
// Room types become rooms; a night counts as available when a rate
// plan exists for it (no published rate means the night is closed).
type PMSSource struct {
	client     *pms.Client
	propertyID string
}

// NewPMSSource builds a Source over the given property.
func NewPMSSource(client *pms.Client, propertyID string) *PMSSource {
	return &PMSSource{client: client, propertyID: propertyID}
}

func (s *PMSSource) FetchRooms(ctx context.Context) ([]models.Room, error) {
	roomTypes, err := s.client.FetchRoomTypes(ctx, s.propertyID)
	if err != nil {
		return nil, err
	}
	rooms := make([]models.Room, 0, len(roomTypes))
	for _, rt := range roomTypes {
		rooms = append(rooms, models.Room{
			ID:       rt.ID,
			Name:     rt.Name,
			Capacity: rt.MaxGuests,
		})
	}
	return rooms, nil
}

func (s *PMSSource) FetchAvailability(ctx context.Context, start, end time.Time) ([]models.AvailabilityRecord, error) {
	plans, err := s.client.FetchRatePlans(ctx, s.propertyID, start.Format(DateFormat), end.Format(DateFormat))
	if err != nil {
		return nil, err
	}

	rated := make(map[string]bool, len(plans))
	for _, plan := range plans {
		rated[plan.RoomTypeID+"|"+plan.Date] = true
	}

	rooms, err := s.FetchRooms(ctx)
	if err != nil {
		return nil, err
	}

	var records []models.AvailabilityRecord
	for _, room := range rooms {
		for _, night := range Nights(start, end) {
			date := night.Format(DateFormat)
			records = append(records, models.AvailabilityRecord{
				RoomID:      room.ID,
				Date:        date,
				IsAvailable: rated[room.ID+"|"+date],
			})
		}
	}
	return records, nil
}
