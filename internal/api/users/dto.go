package users

type UserDTO struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

type StatsDTO struct {
	EpisodesWatched int64 `json:"episodes_watched"`
	SeriesRated     int64 `json:"series_rated"`
}

type MeResponse struct {
	User  UserDTO  `json:"user"`
	Stats StatsDTO `json:"stats"`
}
