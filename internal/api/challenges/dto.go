package challenges

import (
	"time"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/challenges"
)

type ChallengeRequest struct {
	Title          string    `json:"title" binding:"required"`
	Description    string    `json:"description"`
	TargetEpisodes int       `json:"target_episodes" binding:"required,min=1"`
	StartsAt       time.Time `json:"starts_at" binding:"required"`
	EndsAt         time.Time `json:"ends_at" binding:"required"`
}

type ChallengeUpdateRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	TargetEpisodes *int       `json:"target_episodes"`
	StartsAt       *time.Time `json:"starts_at"`
	EndsAt         *time.Time `json:"ends_at"`
}

type ChallengeDTO struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	TargetEpisodes int       `json:"target_episodes"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	Active         bool      `json:"active"`

	EpisodesWatched int        `json:"episodes_watched"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

func toChallengeDTO(ch challenges.Challenge, now time.Time) ChallengeDTO {
	return ChallengeDTO{
		ID:             ch.ID,
		Title:          ch.Title,
		Description:    ch.Description,
		TargetEpisodes: ch.TargetEpisodes,
		StartsAt:       ch.StartsAt,
		EndsAt:         ch.EndsAt,
		Active:         !now.Before(ch.StartsAt) && !now.After(ch.EndsAt),
	}
}
