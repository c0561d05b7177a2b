package response

type FormStatus struct {
	Closed     bool `json:"closed"`
	MaxTickets int  `json:"maxTickets"`
}

type RegistrationData struct {
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	Email          string `json:"email"`
	Gender         string `json:"gender"`
	TicketQuantity int    `json:"ticketQuantity"`
}

type RegistrationCreated struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    RegistrationData `json:"data"`
}
