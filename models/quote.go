package models

// CartItem is a single priced line supplied by the client. It is never
// persisted; a fresh cart arrives with every quote request.
type CartItem struct {
	Name     string  `json:"name,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// QuoteLine is one row of the quote breakdown.
type QuoteLine struct {
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// Quote is derived per request and never stored. Subtotal, SST and
// grand total are each rounded to cents independently.
type Quote struct {
	Subtotal   float64     `json:"subtotal"`
	SST        float64     `json:"sst"`
	GrandTotal float64     `json:"grandTotal"`
	Breakdown  []QuoteLine `json:"breakdown"`
}
