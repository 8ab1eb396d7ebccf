package catalog

import (
	"context"
	"hash/fnv"
	"time"

	"stayhub/models"
)

// StaticSource is a deterministic in-process catalog used when no
// property-management system is configured. Availability is synthesized
// from a hash of (room, date) so repeated queries always agree.
type StaticSource struct {
	rooms []models.Room
}

// NewStaticSource builds a StaticSource over the given catalog. With no
// rooms supplied it falls back to the default seed catalog.
func NewStaticSource(rooms []models.Room) *StaticSource {
	if len(rooms) == 0 {
		rooms = defaultRooms()
	}
	return &StaticSource{rooms: rooms}
}

func defaultRooms() []models.Room {
	return []models.Room{
		{ID: "deluxe-king", Name: "Deluxe King", Capacity: 2},
		{ID: "deluxe-twin", Name: "Deluxe Twin", Capacity: 2},
		{ID: "family-suite", Name: "Family Suite", Capacity: 4},
		{ID: "executive-suite", Name: "Executive Suite", Capacity: 3},
		{ID: "standard-queen", Name: "Standard Queen", Capacity: 2},
	}
}

func (s *StaticSource) FetchRooms(ctx context.Context) ([]models.Room, error) {
	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out, nil
}

func (s *StaticSource) FetchAvailability(ctx context.Context, start, end time.Time) ([]models.AvailabilityRecord, error) {
	var records []models.AvailabilityRecord
	for _, room := range s.rooms {
		for _, night := range Nights(start, end) {
			date := night.Format(DateFormat)
			records = append(records, models.AvailabilityRecord{
				RoomID:      room.ID,
				Date:        date,
				IsAvailable: syntheticAvailable(room.ID, date),
			})
		}
	}
	return records, nil
}

// syntheticAvailable marks roughly one night in seven as taken.
func syntheticAvailable(roomID, date string) bool {
	h := fnv.New32a()
	h.Write([]byte(roomID))
	h.Write([]byte(date))
	return h.Sum32()%7 != 0
}
