package ratings

import "time"

// Rating holds one user's score for one series. Uniqueness per
// (user, series) is enforced by lookup-then-upsert in Upsert; an overwrite
// resets CreatedAt, which therefore reads as "last updated".
type Rating struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;index:idx_ratings_user_series,priority:1" json:"user_id"`
	SeriesID uint `gorm:"not null;index:idx_ratings_user_series,priority:2" json:"series_id"`

	Score   int    `gorm:"not null" json:"score"`
	Comment string `json:"comment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

const (
	MinScore = 1
	MaxScore = 10
)
