package domain

import "time"

// Claim ties an upstream order to a chosen add-on ticket quantity. At most
// one claim exists per order; the first successful claim wins.
type Claim struct {
	ID        uint      `json:"id"`
	OrderID   string    `json:"orderId"`
	Email     string    `json:"email"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

// TicketLine is one line of an upstream order, read from the ticketing
// system's tables and never mutated here.
type TicketLine struct {
	OrderID  string `json:"orderId"`
	TicketID string `json:"tckid"`
	Email    string `json:"email"`
	EventID  string `json:"eventId"`
	ETID     string `json:"etid"`
}

// OrderLookup is the result of resolving an order for the claim flow.
// Either Tickets is populated, or AlreadyRegistered is set with the quantity
// recorded by the earlier claim.
type OrderLookup struct {
	Tickets            []TicketLine
	TotalTickets       int
	AlreadyRegistered  bool
	RegisteredQuantity int
}
