package catalog

import (
	"time"
)

type Series struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null;index" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	CoverURL    string     `json:"cover_url,omitempty"`

	// Denormalized mean of all rating scores, rounded to 2 decimals.
	// Maintained by the ratings package on every rating write/delete.
	Rating float64 `gorm:"not null;default:0" json:"rating"`

	Genres []Genre `gorm:"many2many:series_genres;" json:"genres,omitempty"`
	Actors []Actor `gorm:"many2many:series_actors;" json:"actors,omitempty"`

	Seasons []Season `gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;" json:"seasons,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Season struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	SeriesID uint `gorm:"not null;uniqueIndex:idx_seasons_series_number,priority:1" json:"series_id"`

	SeasonNumber int    `gorm:"not null;uniqueIndex:idx_seasons_series_number,priority:2" json:"season_number"`
	Title        string `json:"title"`

	Episodes []Episode `gorm:"foreignKey:SeasonID;constraint:OnDelete:CASCADE;" json:"episodes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Episode struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	SeasonID uint `gorm:"not null;uniqueIndex:idx_episodes_season_number,priority:1" json:"season_id"`

	EpisodeNumber   int        `gorm:"not null;uniqueIndex:idx_episodes_season_number,priority:2" json:"episode_number"`
	Title           string     `json:"title"`
	AirDate         *time.Time `json:"air_date,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
