package quote

import (
	"encoding/json"
	"fmt"

	"stayhub/models"
)

// Policy decides what happens to a cart item that is missing a numeric
// price or quantity.
type Policy int

const (
	// PolicyLenient keeps the bad item with price and quantity zero, so
	// it contributes nothing to the subtotal.
	PolicyLenient Policy = iota
	// PolicyStrict rejects the whole cart on the first bad item.
	PolicyStrict
)

// ParsePolicy maps a config string to a Policy, defaulting to lenient.
func ParsePolicy(s string) Policy {
	if s == "strict" {
		return PolicyStrict
	}
	return PolicyLenient
}

// rawItem tolerates absent fields; pointers distinguish "missing" from
// a literal zero.
type rawItem struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

// ParseCart decodes a JSON-encoded cart. An empty payload fails with
// ErrMissingCart; anything that is not a JSON array fails with
// ErrInvalidCart. Items with a missing or negative price/quantity are
// handled per the policy.
func ParseCart(raw string, policy Policy) ([]models.CartItem, error) {
	if raw == "" {
		return nil, ErrMissingCart
	}

	var rawItems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &rawItems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCart, err)
	}

	items := make([]models.CartItem, 0, len(rawItems))
	for i, data := range rawItems {
		item, ok := parseItem(data)
		if !ok {
			if policy == PolicyStrict {
				return nil, fmt.Errorf("%w: item %d has no valid price/quantity", ErrInvalidCart, i)
			}
			// Lenient: the item stays in the cart but contributes zero.
			items = append(items, models.CartItem{Name: item.Name})
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func parseItem(data json.RawMessage) (models.CartItem, bool) {
	var ri rawItem
	if err := json.Unmarshal(data, &ri); err != nil {
		return models.CartItem{}, false
	}
	if ri.Price == nil || ri.Quantity == nil || *ri.Price < 0 || *ri.Quantity < 0 {
		return models.CartItem{Name: ri.Name}, false
	}
	return models.CartItem{Name: ri.Name, Price: *ri.Price, Quantity: *ri.Quantity}, true
}
