package reviews

import (
	"time"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/catalog"

	"gorm.io/gorm"
)

// Upsert creates or replaces the (user, series) review. The series must
// exist; the completion gate is the caller's responsibility.
func Upsert(db *gorm.DB, userID, seriesID uint, body string) (Review, error) {
	var out Review
	err := db.Transaction(func(tx *gorm.DB) error {
		var s catalog.Series
		if err := tx.First(&s, "id = ?", seriesID).Error; err != nil {
			return err
		}

		var existing Review
		e := tx.First(&existing, "user_id = ? AND series_id = ?", userID, seriesID).Error
		if e != nil {
			if e != gorm.ErrRecordNotFound {
				return e
			}
			out = Review{UserID: userID, SeriesID: seriesID, Body: body}
			return tx.Create(&out).Error
		}

		if err := tx.Model(&Review{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"body":       body,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return err
		}
		existing.Body = body
		out = existing
		return nil
	})
	if err != nil {
		return Review{}, err
	}
	return out, nil
}

// Delete removes the user's review of the series.
func Delete(db *gorm.DB, userID, seriesID uint) error {
	res := db.Delete(&Review{}, "user_id = ? AND series_id = ?", userID, seriesID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteBySeries drops every review for the series.
func DeleteBySeries(tx *gorm.DB, seriesID uint) error {
	return tx.Delete(&Review{}, "series_id = ?", seriesID).Error
}
