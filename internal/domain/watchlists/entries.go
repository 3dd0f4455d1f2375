package watchlists

import (
	"time"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/catalog"

	"gorm.io/gorm"
)

// AddEntry puts a series into one of the user's collections (nil for the
// ungrouped watchlist). Adding the same series to the same collection twice
// is a no-op returning the existing row.
func AddEntry(db *gorm.DB, userID, seriesID uint, collectionID *uint) (Entry, error) {
	var out Entry
	err := db.Transaction(func(tx *gorm.DB) error {
		var s catalog.Series
		if err := tx.First(&s, "id = ?", seriesID).Error; err != nil {
			return err
		}

		if collectionID != nil {
			var col Collection
			if err := tx.First(&col, "id = ? AND user_id = ?", *collectionID, userID).Error; err != nil {
				return err
			}
		}

		q := tx.Where("user_id = ? AND series_id = ?", userID, seriesID)
		if collectionID != nil {
			q = q.Where("collection_id = ?", *collectionID)
		} else {
			q = q.Where("collection_id IS NULL")
		}

		var existing Entry
		e := q.First(&existing).Error
		if e == nil {
			out = existing
			return nil
		}
		if e != gorm.ErrRecordNotFound {
			return e
		}

		out = Entry{
			UserID:       userID,
			SeriesID:     seriesID,
			CollectionID: collectionID,
			AddedAt:      time.Now(),
		}
		return tx.Create(&out).Error
	})
	if err != nil {
		return Entry{}, err
	}
	return out, nil
}

// RemoveEntry takes a series out of a collection (nil for the ungrouped
// watchlist).
func RemoveEntry(db *gorm.DB, userID, seriesID uint, collectionID *uint) error {
	q := db.Where("user_id = ? AND series_id = ?", userID, seriesID)
	if collectionID != nil {
		q = q.Where("collection_id = ?", *collectionID)
	} else {
		q = q.Where("collection_id IS NULL")
	}

	res := q.Delete(&Entry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteBySeries drops every watchlist entry pointing at the series.
func DeleteBySeries(tx *gorm.DB, seriesID uint) error {
	return tx.Delete(&Entry{}, "series_id = ?", seriesID).Error
}
