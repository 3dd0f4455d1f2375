package watchlists

import "time"

type Collection struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`

	Entries []Entry `gorm:"foreignKey:CollectionID" json:"entries,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Entry struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;index" json:"user_id"`
	SeriesID uint `gorm:"not null;index" json:"series_id"`

	CollectionID *uint `gorm:"index" json:"collection_id,omitempty"`

	AddedAt   time.Time `json:"added_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (Entry) TableName() string {
	return "watchlist_entries"
}
