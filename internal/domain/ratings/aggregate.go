package ratings

import (
	"errors"
	"math"
	"time"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/catalog"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/events"

	"gorm.io/gorm"
)

var ErrScoreOutOfRange = errors.New("score out of range")

// Upsert creates or overwrites the (user, series) rating and recomputes the
// series aggregate in the same transaction. The completion gate is the
// caller's responsibility; this layer only checks the series exists and the
// score is in range.
func Upsert(db *gorm.DB, userID, seriesID uint, score int, comment string) (Rating, error) {
	if score < MinScore || score > MaxScore {
		return Rating{}, ErrScoreOutOfRange
	}

	var out Rating
	err := db.Transaction(func(tx *gorm.DB) error {
		var s catalog.Series
		if err := tx.First(&s, "id = ?", seriesID).Error; err != nil {
			return err
		}

		var existing Rating
		e := tx.First(&existing, "user_id = ? AND series_id = ?", userID, seriesID).Error
		if e != nil {
			if e != gorm.ErrRecordNotFound {
				return e
			}
			out = Rating{
				UserID:   userID,
				SeriesID: seriesID,
				Score:    score,
				Comment:  comment,
			}
			if err := tx.Create(&out).Error; err != nil {
				return err
			}
		} else {
			// overwrite-as-update: created_at restarts at now
			now := time.Now()
			if err := tx.Model(&Rating{}).
				Where("id = ?", existing.ID).
				Updates(map[string]interface{}{
					"score":      score,
					"comment":    comment,
					"created_at": now,
				}).Error; err != nil {
				return err
			}
			existing.Score = score
			existing.Comment = comment
			existing.CreatedAt = now
			out = existing
		}

		return RecalcAggregate(tx, seriesID)
	})
	if err != nil {
		return Rating{}, err
	}

	events.Publish(events.Event{
		Type:      events.RatingChanged,
		UserID:    userID,
		SeriesID:  seriesID,
		Timestamp: time.Now(),
	})

	return out, nil
}

// Delete removes the (user, series) rating and recomputes the aggregate.
func Delete(db *gorm.DB, userID, seriesID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&Rating{}, "user_id = ? AND series_id = ?", userID, seriesID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return RecalcAggregate(tx, seriesID)
	})
}

// DeleteBySeries drops every rating for the series. The aggregate is not
// recomputed because the series row itself is going away.
func DeleteBySeries(tx *gorm.DB, seriesID uint) error {
	return tx.Delete(&Rating{}, "series_id = ?", seriesID).Error
}

// RecalcAggregate persists the arithmetic mean of all remaining scores onto
// the series, rounded to 2 decimals, 0 when no ratings remain.
func RecalcAggregate(tx *gorm.DB, seriesID uint) error {
	var avg *float64
	if err := tx.Model(&Rating{}).
		Where("series_id = ?", seriesID).
		Select("AVG(score)").
		Scan(&avg).Error; err != nil {
		return err
	}

	value := 0.0
	if avg != nil {
		value = math.Round(*avg*100) / 100
	}

	return tx.Model(&catalog.Series{}).
		Where("id = ?", seriesID).
		Update("rating", value).Error
}
