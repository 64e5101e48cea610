package domain

import "time"

// Reservation holds one slot on one field for one user. The primary key is
// the composite slot identity, so the database itself guarantees at most
// one live reservation per (field, date, time).
type Reservation struct {
	ID        string    `json:"id" gorm:"primaryKey;size:128"`
	FieldID   string    `json:"fieldId" gorm:"size:64;not null;uniqueIndex:idx_slot,priority:1"`
	Date      string    `json:"date" gorm:"size:10;not null;uniqueIndex:idx_slot,priority:2;index:idx_user_date,priority:2"`
	Time      string    `json:"time" gorm:"size:5;not null;uniqueIndex:idx_slot,priority:3"`
	Username  string    `json:"user" gorm:"size:64;not null;index:idx_user_date,priority:1"`
	CreatedAt time.Time `json:"created_at"`
}

func (Reservation) TableName() string { return "reservations" }

// SlotID builds the composite reservation id for a slot.
func SlotID(fieldID, date, timeStr string) string {
	return fieldID + "_" + date + "_" + timeStr
}
