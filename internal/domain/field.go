package domain

// Field is a bookable physical resource. Position is the admin-defined
// list order shown to users.
type Field struct {
	ID       string `json:"id" gorm:"primaryKey;size:64"`
	Name     string `json:"name" gorm:"not null"`
	Position int    `json:"position" gorm:"not null;default:0"`
}

func (Field) TableName() string { return "fields" }

// AllFields is the wildcard field id used by closure windows that apply
// to every field.
const AllFields = "*"
