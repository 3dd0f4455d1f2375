package routes

import (
	adminapi "github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/api/admin"
	authapi "github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/api/auth"
	catalogapi "github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/api/catalog"
	challengesapi "github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/api/challenges"
	progressapi "github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/api/progress"
	ratingsapi "github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/api/ratings"
	reviewsapi "github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/api/reviews"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/api/users"
	watchlistsapi "github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/api/watchlists"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Catalogue browsing is open
	public.GET("/series", catalogapi.ListSeries)
	public.GET("/series/:id", catalogapi.GetSeriesByID)
	public.GET("/series/:id/ratings", ratingsapi.ListRatings)
	public.GET("/series/:id/reviews", reviewsapi.ListReviews)
	public.GET("/genres", catalogapi.ListGenres)
	public.GET("/actors", catalogapi.ListActors)
	public.GET("/actors/:id", catalogapi.GetActorByID)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/progress", progressapi.GetDashboard)
	auth.POST("/episodes/:id/watch", progressapi.MarkEpisodeWatched)
	auth.DELETE("/episodes/:id/watch", progressapi.RemoveEpisodeProgress)
	auth.POST("/seasons/:id/watch-up-to", progressapi.MarkSeasonUpTo)
	auth.GET("/seasons/:id/current-episode", progressapi.GetCurrentEpisodeForSeason)
	auth.GET("/series/:id/progress", progressapi.GetSeriesProgress)
	auth.GET("/series/:id/next-episode", progressapi.GetNextEpisode)

	// Rating and review writes need a confirmed email
	verified := auth.Group("/")
	verified.Use(middleware.RequireVerifiedAccount())
	verified.PUT("/series/:id/rating", ratingsapi.UpsertRating)
	verified.DELETE("/series/:id/rating", ratingsapi.DeleteRating)
	verified.PUT("/series/:id/review", reviewsapi.UpsertReview)
	verified.DELETE("/series/:id/review", reviewsapi.DeleteReview)

	auth.GET("/watchlist", watchlistsapi.GetWatchlist)
	auth.POST("/watchlist", watchlistsapi.AddToWatchlist)
	auth.DELETE("/watchlist/:seriesId", watchlistsapi.RemoveFromWatchlist)

	auth.GET("/collections", watchlistsapi.ListCollections)
	auth.POST("/collections", watchlistsapi.CreateCollection)
	auth.PUT("/collections/:id", watchlistsapi.RenameCollection)
	auth.DELETE("/collections/:id", watchlistsapi.DeleteCollection)
	auth.POST("/collections/:id/entries", watchlistsapi.AddToCollection)
	auth.DELETE("/collections/:id/entries/:seriesId", watchlistsapi.RemoveFromCollection)

	auth.GET("/challenges", challengesapi.ListChallenges)
	auth.GET("/challenges/:id/progress", challengesapi.GetChallengeProgress)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/stats", adminapi.GetAdminStats)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/user/:id", adminapi.GetUserDetails)

	admin.POST("/series", catalogapi.CreateSeries)
	admin.PUT("/series/:id", catalogapi.UpdateSeries)
	admin.DELETE("/series/:id", catalogapi.DeleteSeries)
	admin.POST("/series/:id/seasons", catalogapi.CreateSeason)
	admin.PUT("/seasons/:id", catalogapi.UpdateSeason)
	admin.DELETE("/seasons/:id", catalogapi.DeleteSeason)
	admin.POST("/seasons/:id/episodes", catalogapi.CreateEpisode)
	admin.PUT("/episodes/:id", catalogapi.UpdateEpisode)
	admin.DELETE("/episodes/:id", catalogapi.DeleteEpisode)

	admin.POST("/genres", catalogapi.CreateGenre)
	admin.PUT("/genres/:id", catalogapi.UpdateGenre)
	admin.DELETE("/genres/:id", catalogapi.DeleteGenre)
	admin.POST("/actors", catalogapi.CreateActor)
	admin.PUT("/actors/:id", catalogapi.UpdateActor)
	admin.DELETE("/actors/:id", catalogapi.DeleteActor)

	admin.POST("/challenges", challengesapi.CreateChallenge)
	admin.PUT("/challenges/:id", challengesapi.UpdateChallenge)
	admin.DELETE("/challenges/:id", challengesapi.DeleteChallenge)
}
