package domain

// Event is one configured promotional occasion. Events come from static
// configuration; nothing in the write path mutates them.
type Event struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	EventName        string `json:"eventName"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Location         string `json:"location"`
	MaxTickets       int    `json:"maxTickets"`
	MaxFemaleTickets int    `json:"maxFemaleTickets"`
	MaxTicketsPerIP  int    `json:"maxTicketsPerIP"`
}

// EffectiveCap is the base ticket cap plus the reserved female pool when one
// is configured.
func (e Event) EffectiveCap() int {
	return e.MaxTickets + e.MaxFemaleTickets
}

// EventCatalog is an immutable lookup of events keyed by ID, built once at
// process start.
type EventCatalog struct {
	events map[uint]Event
}

func NewEventCatalog(events []Event) *EventCatalog {
	m := make(map[uint]Event, len(events))
	for _, e := range events {
		m[e.ID] = e
	}

	return &EventCatalog{events: m}
}

func (c *EventCatalog) Get(id uint) (Event, bool) {
	e, ok := c.events[id]

	return e, ok
}
