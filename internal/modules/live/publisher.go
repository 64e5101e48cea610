package live

import "fieldbook/internal/domain"

// Publisher adapts the hub to the booking service's event interface.
type Publisher struct {
	hub *Hub
}

func NewPublisher(hub *Hub) *Publisher {
	return &Publisher{hub: hub}
}

func (p *Publisher) ReservationCreated(res *domain.Reservation) {
	p.hub.Broadcast(Event{
		Type:    EventReservationCreated,
		Date:    res.Date,
		FieldID: res.FieldID,
		Time:    res.Time,
		ID:      res.ID,
	})
}

func (p *Publisher) ReservationCancelled(res *domain.Reservation) {
	p.hub.Broadcast(Event{
		Type:    EventReservationCancelled,
		Date:    res.Date,
		FieldID: res.FieldID,
		Time:    res.Time,
		ID:      res.ID,
	})
}
