package catalog

import "time"

type Actor struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null;index" json:"last_name"`
	Biography string `gorm:"type:text" json:"biography,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
