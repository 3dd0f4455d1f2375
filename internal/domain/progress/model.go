package progress

import "time"

// Record is one row of the watch ledger: what a user has done with one
// episode. Uniqueness per (user, episode) is enforced by lookup-then-upsert
// in MarkWatched, and repeat calls update the row in place.
type Record struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"not null;index:idx_progress_user_episode,priority:1" json:"user_id"`
	EpisodeID uint `gorm:"not null;index:idx_progress_user_episode,priority:2" json:"episode_id"`

	WatchedAt   time.Time `json:"watched_at"`
	IsCompleted bool      `gorm:"not null;default:false" json:"is_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Record) TableName() string {
	return "progress_records"
}
