package admin

import "fieldbook/internal/domain"

type AdjustCreditsRequest struct {
	Username string `json:"username" binding:"required"`
	Delta    int    `json:"delta" binding:"required"`
}

type AddCreditsAllRequest struct {
	Delta int `json:"delta" binding:"required,min=1"`
}

type SetPasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type SetStatusRequest struct {
	Username string `json:"username" binding:"required"`
	Disabled *bool  `json:"disabled" binding:"required"`
}

type RenameUserRequest struct {
	Username    string `json:"username" binding:"required"`
	NewUsername string `json:"newUsername" binding:"required,min=2,max=64"`
}

type UpdateConfigRequest struct {
	SlotMinutes int                `json:"slotMinutes" binding:"required,min=15,max=180"`
	OpenRanges  []domain.OpenRange `json:"openRanges" binding:"required,min=1"`
	MaxPerDay   int                `json:"maxBookingsPerUserPerDay" binding:"required,min=1,max=10"`
	MaxPerWeek  int                `json:"maxBookingsPerUserPerWeek" binding:"required,min=1,max=10"`
	MaxActive   int                `json:"maxActiveBookingsPerUser" binding:"required,min=1,max=10"`
	NotesText   string             `json:"notesText"`
	Gallery     []string           `json:"gallery"`
}

type CreateFieldRequest struct {
	ID       string `json:"id" binding:"required,min=1,max=64"`
	Name     string `json:"name" binding:"required"`
	Position int    `json:"position"`
}

// PublicConfig is the read-only view everyone gets, including the field
// list, so the booking UI can render before login.
type PublicConfig struct {
	SlotMinutes int                `json:"slotMinutes"`
	OpenRanges  []domain.OpenRange `json:"openRanges"`
	MaxPerDay   int                `json:"maxBookingsPerUserPerDay"`
	MaxPerWeek  int                `json:"maxBookingsPerUserPerWeek"`
	MaxActive   int                `json:"maxActiveBookingsPerUser"`
	NotesText   string             `json:"notesText"`
	Gallery     []string           `json:"gallery"`
	Fields      []domain.Field     `json:"fields"`
}
