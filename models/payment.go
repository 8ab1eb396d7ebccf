package models

import "time"

// Bill statuses as recorded from gateway callbacks.
const (
	BillStatusPending = "pending"
	BillStatusPaid    = "paid"
	BillStatusFailed  = "failed"
)

// Bill is the gateway-side payment object created for a booking.
type Bill struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Amount    int       `json:"amount"` // cents
	PayerName string    `json:"payerName"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// BillRequest carries the fields needed to open a bill with the gateway.
type BillRequest struct {
	Amount      int    `json:"amount"` // cents
	Description string `json:"description"`
	PayerName   string `json:"payerName"`
	Email       string `json:"email"`
	CallbackURL string `json:"callbackUrl"`
	RedirectURL string `json:"redirectUrl"`
}

// PaymentCallback is the normalized payload of a gateway webhook or
// redirect: the raw gateway parameters plus the detached signature.
type PaymentCallback struct {
	BillID    string
	Paid      bool
	Amount    int
	Params    map[string]string
	Signature string
}
