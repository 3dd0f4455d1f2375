package main

import (
	"log"
	"os"
	"time"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/config"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/database"
	routes "github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/app/http"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/challenges"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/events"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	bus := events.NewBus(256)
	bus.Subscribe(events.EpisodeWatched, func(e events.Event) {
		if err := challenges.Recalculate(database.DB, e.UserID); err != nil {
			log.Printf("challenges: recalculate for user %d failed: %v", e.UserID, err)
		}
	})
	// the bus runs for the life of the process
	bus.Start()
	events.SetDefault(bus)

	r := gin.Default()

	// ✅ Add CORS middleware BEFORE registering routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
