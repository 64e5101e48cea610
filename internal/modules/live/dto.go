package live

const (
	EventReservationCreated   = "reservation_created"
	EventReservationCancelled = "reservation_cancelled"
)

type Event struct {
	Type    string `json:"type"`
	Date    string `json:"date"`
	FieldID string `json:"fieldId"`
	Time    string `json:"time"`
	ID      string `json:"id"`
}

// WatchRequest is the only message clients send: which date to follow.
type WatchRequest struct {
	Date string `json:"date"`
}
