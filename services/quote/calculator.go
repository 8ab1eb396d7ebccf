package quote

import (
	"errors"
	"math"

	"stayhub/models"
)

// DefaultTaxRate is the SST rate applied when none is configured.
const DefaultTaxRate = 0.08

var (
	ErrMissingCart = errors.New("cart is required")
	ErrInvalidCart = errors.New("cart must be a JSON array of items")
)

// Calculator prices a cart of line items. It holds only policy (the tax
// rate); every quote is a pure function of its input.
type Calculator struct {
	taxRate float64
}

// NewCalculator returns a Calculator with the given SST rate. Rates
// outside (0, 1) fall back to DefaultTaxRate.
func NewCalculator(taxRate float64) *Calculator {
	if taxRate <= 0 || taxRate >= 1 {
		taxRate = DefaultTaxRate
	}
	return &Calculator{taxRate: taxRate}
}

// Quote computes subtotal, SST and grand total over the cart. The
// subtotal is summed in full precision before rounding; each of the
// three figures is then rounded to cents independently.
func (c *Calculator) Quote(items []models.CartItem) (*models.Quote, error) {
	if len(items) == 0 {
		return nil, ErrMissingCart
	}

	var sum float64
	breakdown := make([]models.QuoteLine, 0, len(items))
	for _, item := range items {
		line := item.Price * float64(item.Quantity)
		sum += line
		breakdown = append(breakdown, models.QuoteLine{
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			LineTotal: Round2(line),
		})
	}

	subtotal := Round2(sum)
	sst := Round2(subtotal * c.taxRate)
	return &models.Quote{
		Subtotal:   subtotal,
		SST:        sst,
		GrandTotal: Round2(subtotal + sst),
		Breakdown:  breakdown,
	}, nil
}

// Round2 rounds to the nearest cent, half away from zero (never
// banker's rounding). The epsilon absorbs binary representation error
// in decimal inputs, so 10.005 rounds up to 10.01 even though its
// nearest float64 sits just below the midpoint.
func Round2(v float64) float64 {
	cents := math.Floor(math.Abs(v)*100 + 0.5 + 1e-9)
	return math.Copysign(cents, v) / 100
}
