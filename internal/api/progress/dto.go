package progress

import (
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/progress"
)

type MarkWatchedRequest struct {
	Completed bool `json:"completed"`
}

type MarkUpToRequest struct {
	Count int `json:"count" binding:"required"`
}

type DashboardEntryDTO struct {
	SeriesID uint             `json:"series_id"`
	Title    string           `json:"title"`
	CoverURL string           `json:"cover_url,omitempty"`
	Summary  progress.Summary `json:"summary"`
}
