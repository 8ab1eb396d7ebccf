package models

// Room is an immutable catalog entry loaded from the catalog source.
type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// AvailabilityRecord marks whether a room can be booked for one night.
// The catalog source returns exactly one record per (room, night) pair
// inside the queried range; an absent record counts as unavailable.
type AvailabilityRecord struct {
	RoomID      string `json:"roomId"`
	Date        string `json:"date"` // YYYY-MM-DD
	IsAvailable bool   `json:"isAvailable"`
}

// RoomResult is one aggregated search row: the room, its per-night
// records for the queried range, and the overall verdict.
type RoomResult struct {
	Room         Room                 `json:"room"`
	Availability []AvailabilityRecord `json:"availability"`
	IsAvailable  bool                 `json:"isAvailable"`
}
