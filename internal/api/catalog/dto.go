package catalog

import (
	"time"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/catalog"
)

// ---------- requests

type CreateSeriesRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	ReleaseDate *time.Time `json:"release_date"`
	CoverURL    string     `json:"cover_url"`
	GenreIDs    []uint     `json:"genre_ids"`
	ActorIDs    []uint     `json:"actor_ids"`
}

type UpdateSeriesRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ReleaseDate *time.Time `json:"release_date"`
	CoverURL    *string    `json:"cover_url"`
	GenreIDs    []uint     `json:"genre_ids"`
	ActorIDs    []uint     `json:"actor_ids"`
}

type CreateSeasonRequest struct {
	SeasonNumber int    `json:"season_number" binding:"required"`
	Title        string `json:"title"`
}

type UpdateSeasonRequest struct {
	SeasonNumber *int    `json:"season_number"`
	Title        *string `json:"title"`
}

type CreateEpisodeRequest struct {
	EpisodeNumber   int        `json:"episode_number" binding:"required"`
	Title           string     `json:"title"`
	AirDate         *time.Time `json:"air_date"`
	DurationMinutes int        `json:"duration_minutes"`
}

type UpdateEpisodeRequest struct {
	EpisodeNumber   *int       `json:"episode_number"`
	Title           *string    `json:"title"`
	AirDate         *time.Time `json:"air_date"`
	DurationMinutes *int       `json:"duration_minutes"`
}

type GenreRequest struct {
	Name string `json:"name" binding:"required"`
}

type ActorRequest struct {
	FirstName string     `json:"first_name" binding:"required"`
	LastName  string     `json:"last_name" binding:"required"`
	Biography string     `json:"biography"`
	BirthDate *time.Time `json:"birth_date"`
}

// ---------- responses

type SeriesListItemDTO struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	CoverURL    string     `json:"cover_url,omitempty"`
	Rating      float64    `json:"rating"`
	Genres      []string   `json:"genres,omitempty"`
}

type SeasonDTO struct {
	ID           uint         `json:"id"`
	SeasonNumber int          `json:"season_number"`
	Title        string       `json:"title,omitempty"`
	Episodes     []EpisodeDTO `json:"episodes,omitempty"`
}

type EpisodeDTO struct {
	ID              uint       `json:"id"`
	EpisodeNumber   int        `json:"episode_number"`
	Title           string     `json:"title,omitempty"`
	AirDate         *time.Time `json:"air_date,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`
}

type SeriesDetailDTO struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	ReleaseDate *time.Time      `json:"release_date,omitempty"`
	CoverURL    string          `json:"cover_url,omitempty"`
	Rating      float64         `json:"rating"`
	Genres      []catalog.Genre `json:"genres"`
	Actors      []catalog.Actor `json:"actors"`
	Seasons     []SeasonDTO     `json:"seasons"`
}

func toSeriesListItemDTO(s catalog.Series) SeriesListItemDTO {
	genres := make([]string, 0, len(s.Genres))
	for _, g := range s.Genres {
		genres = append(genres, g.Name)
	}
	return SeriesListItemDTO{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		ReleaseDate: s.ReleaseDate,
		CoverURL:    s.CoverURL,
		Rating:      s.Rating,
		Genres:      genres,
	}
}

func toSeriesDetailDTO(s catalog.Series) SeriesDetailDTO {
	seasons := make([]SeasonDTO, 0, len(s.Seasons))
	for _, season := range s.Seasons {
		episodes := make([]EpisodeDTO, 0, len(season.Episodes))
		for _, ep := range season.Episodes {
			episodes = append(episodes, EpisodeDTO{
				ID:              ep.ID,
				EpisodeNumber:   ep.EpisodeNumber,
				Title:           ep.Title,
				AirDate:         ep.AirDate,
				DurationMinutes: ep.DurationMinutes,
			})
		}
		seasons = append(seasons, SeasonDTO{
			ID:           season.ID,
			SeasonNumber: season.SeasonNumber,
			Title:        season.Title,
			Episodes:     episodes,
		})
	}

	return SeriesDetailDTO{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		ReleaseDate: s.ReleaseDate,
		CoverURL:    s.CoverURL,
		Rating:      s.Rating,
		Genres:      s.Genres,
		Actors:      s.Actors,
		Seasons:     seasons,
	}
}
