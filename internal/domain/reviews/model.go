package reviews

import "time"

// Review is one user's written review of one series, at most one per
// (user, series). Creating and updating are gated on having watched the
// whole series; deleting is open to the author.
type Review struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;index:idx_reviews_user_series,priority:1" json:"user_id"`
	SeriesID uint `gorm:"not null;index:idx_reviews_user_series,priority:2" json:"series_id"`

	Body string `gorm:"type:text;not null" json:"body"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
