package watchlists

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/database"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/watchlists"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errProtected = errors.New("collection is protected")

type CollectionRequest struct {
	Name string `json:"name" binding:"required"`
}

type AddEntryRequest struct {
	SeriesID uint `json:"series_id" binding:"required"`
}

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// ------------------------------
// GET /collections
// Listing repairs the Favorites invariant first, so a duplicate introduced
// elsewhere heals here.
// ------------------------------
func ListCollections(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if _, err := watchlists.EnsureFavorites(database.DB, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collections"})
		return
	}

	var collections []watchlists.Collection
	if err := database.DB.
		Preload("Entries").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&collections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": collections})
}

// ------------------------------
// POST /collections
// ------------------------------
func CreateCollection(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// the default collection has exactly one instance, created by the system
	if watchlists.IsFavoritesName(req.Name) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Favorites already exists"})
		return
	}

	col := watchlists.Collection{UserID: userID, Name: req.Name}
	if err := database.DB.Create(&col).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create collection"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": col.ID})
}

// ------------------------------
// PUT /collections/:id
// ------------------------------
func RenameCollection(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	colID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var col watchlists.Collection
	if err := database.DB.First(&col, "id = ? AND user_id = ?", colID, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collection"})
		return
	}

	if watchlists.IsFavoritesName(col.Name) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Favorites cannot be renamed"})
		return
	}
	if watchlists.IsFavoritesName(req.Name) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Favorites already exists"})
		return
	}

	if err := database.DB.Model(&col).Update("name", req.Name).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename collection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /collections/:id
// Entries fall back to the ungrouped watchlist rather than disappearing.
// ------------------------------
func DeleteCollection(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	colID, ok := paramID(c, "id")
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var col watchlists.Collection
		if err := tx.First(&col, "id = ? AND user_id = ?", colID, userID).Error; err != nil {
			return err
		}

		if watchlists.IsFavoritesName(col.Name) {
			return errProtected
		}

		if err := tx.Model(&watchlists.Entry{}).
			Where("collection_id = ?", col.ID).
			Update("collection_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&watchlists.Collection{}, "id = ?", col.ID).Error
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}
		if err == errProtected {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Favorites cannot be deleted"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete collection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// POST /collections/:id/entries
// ------------------------------
func AddToCollection(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	colID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := watchlists.AddEntry(database.DB, userID, req.SeriesID, &colID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Series or collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to collection"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ------------------------------
// DELETE /collections/:id/entries/:seriesId
// ------------------------------
func RemoveFromCollection(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	colID, ok := paramID(c, "id")
	if !ok {
		return
	}
	seriesID, ok := paramID(c, "seriesId")
	if !ok {
		return
	}

	if err := watchlists.RemoveEntry(database.DB, userID, seriesID, &colID); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// GET /watchlist  (ungrouped entries)
// POST /watchlist { series_id }
// DELETE /watchlist/:seriesId
// ------------------------------
func GetWatchlist(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var entries []watchlists.Entry
	if err := database.DB.
		Where("user_id = ? AND collection_id IS NULL", userID).
		Order("added_at DESC").
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load watchlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": entries})
}

func AddToWatchlist(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := watchlists.AddEntry(database.DB, userID, req.SeriesID, nil)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Series not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to watchlist"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func RemoveFromWatchlist(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	seriesID, ok := paramID(c, "seriesId")
	if !ok {
		return
	}

	if err := watchlists.RemoveEntry(database.DB, userID, seriesID, nil); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
