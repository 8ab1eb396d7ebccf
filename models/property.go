package models

// HotelDetails is the property profile served by the property-management
// system, trimmed to the fields the site renders.
type HotelDetails struct {
	PropertyID  string `json:"propertyId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

// RoomType is a bookable room category within a property.
type RoomType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MaxGuests   int    `json:"maxGuests"`
	Description string `json:"description,omitempty"`
}

// RatePlan is a nightly price for a room type on a given date.
type RatePlan struct {
	RoomTypeID string  `json:"roomTypeId"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Rate       float64 `json:"rate"`
	Currency   string  `json:"currency,omitempty"`
}
