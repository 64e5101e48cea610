package booking

type CreateReservationRequest struct {
	FieldID string `json:"fieldId" binding:"required"`
	Date    string `json:"date" binding:"required,isodate"`
	Time    string `json:"time" binding:"required,hhmm"`
}

// SlotStatus is one entry of the per-day availability grid.
type SlotStatus struct {
	Time     string `json:"time"`
	Taken    bool   `json:"taken"`
	Closed   bool   `json:"closed"`
	Reason   string `json:"reason,omitempty"`
	TakenBy  string `json:"takenBy,omitempty"`
	FieldID  string `json:"fieldId"`
	SlotDate string `json:"date"`
}
