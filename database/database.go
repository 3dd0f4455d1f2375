package database

import (
	"fmt"
	"log"
	"os"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/catalog"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/challenges"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/progress"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/ratings"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/reviews"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/users"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/watchlists"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(Models()...); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}

// Models lists every domain model in migration order; tests reuse it against
// an in-memory store.
func Models() []interface{} {
	return []interface{}{
		// core
		&users.User{},
		&users.VerificationToken{},

		// catalogue
		&catalog.Genre{},
		&catalog.Actor{},
		&catalog.Series{},
		&catalog.Season{},
		&catalog.Episode{},

		// user-generated
		&progress.Record{},
		&ratings.Rating{},
		&reviews.Review{},
		&watchlists.Collection{},
		&watchlists.Entry{},

		// challenges
		&challenges.Challenge{},
		&challenges.Progress{},
	}
}
