package domain

import (
	"encoding/json"
	"time"
)

// OpenRange is one bookable window within a day, e.g. 09:00-13:00.
type OpenRange struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Config is the singleton row of booking tunables. Open ranges and the
// gallery are stored as JSON columns and decoded on demand.
type Config struct {
	ID          int64     `json:"-" gorm:"primaryKey"`
	SlotMinutes int       `json:"slotMinutes" gorm:"not null;default:45"`
	OpenRanges  string    `json:"-" gorm:"column:open_ranges;not null;default:'[]'"`
	MaxPerDay   int       `json:"maxBookingsPerUserPerDay" gorm:"not null;default:1"`
	MaxPerWeek  int       `json:"maxBookingsPerUserPerWeek" gorm:"not null;default:3"`
	MaxActive   int       `json:"maxActiveBookingsPerUser" gorm:"not null;default:1"`
	NotesText   string    `json:"notesText"`
	Gallery     string    `json:"-" gorm:"column:gallery;not null;default:'[]'"`
	UpdatedAt   time.Time `json:"-"`
}

func (Config) TableName() string { return "config" }

// ConfigID is the fixed id of the singleton row.
const ConfigID int64 = 1

func (c *Config) Ranges() ([]OpenRange, error) {
	var out []OpenRange
	if c.OpenRanges == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(c.OpenRanges), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Config) SetRanges(ranges []OpenRange) error {
	b, err := json.Marshal(ranges)
	if err != nil {
		return err
	}
	c.OpenRanges = string(b)
	return nil
}

func (c *Config) GalleryImages() []string {
	var out []string
	if c.Gallery == "" {
		return out
	}
	_ = json.Unmarshal([]byte(c.Gallery), &out)
	return out
}
