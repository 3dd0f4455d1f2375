package challenges

import "time"

// Challenge is an admin-defined "watch N episodes between these dates" goal.
type Challenge struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	TargetEpisodes int       `gorm:"not null" json:"target_episodes"`
	StartsAt       time.Time `gorm:"not null" json:"starts_at"`
	EndsAt         time.Time `gorm:"not null" json:"ends_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Progress is one user's standing in one challenge, recomputed best-effort
// after each episode watch.
type Progress struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	UserID      uint `gorm:"not null;index:idx_challenge_progress,priority:1" json:"user_id"`
	ChallengeID uint `gorm:"not null;index:idx_challenge_progress,priority:2" json:"challenge_id"`

	EpisodesWatched int        `gorm:"not null;default:0" json:"episodes_watched"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Progress) TableName() string {
	return "challenge_progress"
}
