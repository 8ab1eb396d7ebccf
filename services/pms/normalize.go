package pms

import (
	"encoding/json"
	"fmt"

	"stayhub/models"
)

// The PMS is inconsistent about response shape: some endpoints answer
// with the bare payload, others wrap it one level in {"data": ...}.
// Normalization unwraps the envelope first, then maps the provider's
// field-name variants onto the canonical models.

// unwrapData strips a {"data": ...} envelope when present.
func unwrapData(raw []byte) []byte {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		return env.Data
	}
	return raw
}

type hotelShape struct {
	PropertyID  string `json:"propertyId"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

func normalizeHotelDetails(raw []byte) (*models.HotelDetails, error) {
	var shape hotelShape
	if err := json.Unmarshal(unwrapData(raw), &shape); err != nil {
		return nil, fmt.Errorf("decode hotel details: %v", err)
	}
	propertyID := shape.PropertyID
	if propertyID == "" {
		propertyID = shape.ID
	}
	return &models.HotelDetails{
		PropertyID:  propertyID,
		Name:        shape.Name,
		Description: shape.Description,
		Address:     shape.Address,
		City:        shape.City,
		Country:     shape.Country,
		Phone:       shape.Phone,
		Email:       shape.Email,
	}, nil
}

type roomTypeShape struct {
	ID           string `json:"id"`
	RoomTypeID   string `json:"roomTypeId"`
	Name         string `json:"name"`
	MaxGuests    int    `json:"maxGuests"`
	MaxOccupancy int    `json:"maxOccupancy"`
	Description  string `json:"description"`
}

func normalizeRoomTypes(raw []byte) ([]models.RoomType, error) {
	var shapes []roomTypeShape
	if err := json.Unmarshal(unwrapData(raw), &shapes); err != nil {
		return nil, fmt.Errorf("decode room types: %v", err)
	}
	out := make([]models.RoomType, 0, len(shapes))
	for _, s := range shapes {
		id := s.ID
		if id == "" {
			id = s.RoomTypeID
		}
		guests := s.MaxGuests
		if guests == 0 {
			guests = s.MaxOccupancy
		}
		if id == "" {
			continue
		}
		out = append(out, models.RoomType{
			ID:          id,
			Name:        s.Name,
			MaxGuests:   guests,
			Description: s.Description,
		})
	}
	return out, nil
}

type ratePlanShape struct {
	RoomTypeID string  `json:"roomTypeId"`
	RoomType   string  `json:"room_type_id"`
	Date       string  `json:"date"`
	Rate       float64 `json:"rate"`
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
}

func normalizeRatePlans(raw []byte) ([]models.RatePlan, error) {
	var shapes []ratePlanShape
	if err := json.Unmarshal(unwrapData(raw), &shapes); err != nil {
		return nil, fmt.Errorf("decode rate plans: %v", err)
	}
	out := make([]models.RatePlan, 0, len(shapes))
	for _, s := range shapes {
		id := s.RoomTypeID
		if id == "" {
			id = s.RoomType
		}
		rate := s.Rate
		if rate == 0 {
			rate = s.Price
		}
		if id == "" || s.Date == "" {
			continue
		}
		out = append(out, models.RatePlan{
			RoomTypeID: id,
			Date:       s.Date,
			Rate:       rate,
			Currency:   s.Currency,
		})
	}
	return out, nil
}
