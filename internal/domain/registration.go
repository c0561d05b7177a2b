package domain

import "time"

const (
	GenderMasculino = "Masculino"
	GenderFemenino  = "Femenino"
	GenderOtro      = "Otro"
)

// Registration is one accepted signup for an event. Rows are written once and
// never updated or deleted by this service.
type Registration struct {
	ID             uint      `json:"id"`
	EventID        uint      `json:"eventId"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Email          string    `json:"email"`
	Gender         string    `json:"gender"`
	TicketQuantity int       `json:"ticketQuantity"`
	IPAddress      string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}

// FormStatus is the read-only view of an event's registration form.
type FormStatus struct {
	Closed     bool `json:"closed"`
	MaxTickets int  `json:"maxTickets"`
}
