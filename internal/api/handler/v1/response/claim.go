package response

type OrderTicket struct {
	OrderID  string `json:"orderId"`
	TicketID string `json:"tckid"`
	Email    string `json:"email"`
	ETID     string `json:"etid"`
}

type OrderLookup struct {
	Tickets           []OrderTicket `json:"tickets"`
	TotalTickets      int           `json:"totalTickets"`
	AlreadyRegistered bool          `json:"alreadyRegistered"`
}

type OrderAlreadyRegistered struct {
	AlreadyRegistered  bool   `json:"alreadyRegistered"`
	Message            string `json:"message"`
	RegisteredQuantity int    `json:"registeredQuantity"`
}

type ClaimSaved struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	OrderID  string `json:"orderId"`
	Email    string `json:"email"`
	Quantity int    `json:"quantity"`
}
