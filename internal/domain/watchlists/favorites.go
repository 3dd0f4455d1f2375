package watchlists

import (
	"strings"

	"gorm.io/gorm"
)

// Both spellings appear in old client builds, so both count as the default
// collection.
func IsFavoritesName(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	return n == "favorites" || n == "favourite"
}

// EnsureFavorites repairs the "exactly one Favorites collection per user"
// invariant and returns the surviving collection. Zero matches creates one;
// more than one keeps the earliest-created, moves every entry from the
// duplicates onto it, and deletes the duplicates. Called at registration and
// again on every collection-list read, so a duplicate introduced by a race
// heals on the next read.
func EnsureFavorites(db *gorm.DB, userID uint) (Collection, error) {
	var out Collection
	err := db.Transaction(func(tx *gorm.DB) error {
		var all []Collection
		if err := tx.Where("user_id = ?", userID).
			Order("created_at ASC, id ASC").
			Find(&all).Error; err != nil {
			return err
		}

		var favorites []Collection
		for _, col := range all {
			if IsFavoritesName(col.Name) {
				favorites = append(favorites, col)
			}
		}

		if len(favorites) == 0 {
			out = Collection{UserID: userID, Name: "Favorites"}
			return tx.Create(&out).Error
		}

		out = favorites[0]
		if len(favorites) == 1 {
			return nil
		}

		dupIDs := make([]uint, 0, len(favorites)-1)
		for _, dup := range favorites[1:] {
			dupIDs = append(dupIDs, dup.ID)
		}

		if err := tx.Model(&Entry{}).
			Where("collection_id IN ?", dupIDs).
			Update("collection_id", out.ID).Error; err != nil {
			return err
		}

		return tx.Delete(&Collection{}, "id IN ?", dupIDs).Error
	})
	if err != nil {
		return Collection{}, err
	}
	return out, nil
}
