package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClosedDay marks a whole calendar date as unavailable. Existence is the
// whole state; the reason is informational.
type ClosedDay struct {
	Date      string    `json:"date" gorm:"primaryKey;size:10"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (ClosedDay) TableName() string { return "closed_days" }

// ClosedSlot is a closure window: a [StartDate, EndDate] inclusive date
// range and a [StartTime, EndTime) time range within each of those days,
// for one field or for all of them (FieldID == AllFields).
type ClosedSlot struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FieldID   string    `json:"fieldId" gorm:"size:64;not null;index"`
	StartDate string    `json:"startDate" gorm:"size:10;not null;index"`
	EndDate   string    `json:"endDate" gorm:"size:10;not null;index"`
	StartTime string    `json:"startTime" gorm:"size:5;not null"`
	EndTime   string    `json:"endTime" gorm:"size:5;not null"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (ClosedSlot) TableName() string { return "closed_slots" }

func (c *ClosedSlot) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
