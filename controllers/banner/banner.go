package bannerControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SharonKariuki/Soko/models"
)

type CreateBannerInput struct {
	Image    string `json:"image" binding:"required"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Link     string `json:"link"`
	// Pointer so an explicit false is distinguishable from the default true.
	Active    *bool `json:"active"`
	SortOrder int   `json:"order"`
}

// GET /api/banner
//
// Surfaces the active banner with the lowest sort order.
func GetActiveBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.Banner
		err := db.
			Where("active = ?", true).
			Order("sort_order ASC").
			First(&banner).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No active banner"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banner: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, banner)
	}
}

// POST /api/banner (admin/poster)
func CreateBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateBannerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
			return
		}

		active := true
		if input.Active != nil {
			active = *input.Active
		}

		banner := models.Banner{
			Image:     input.Image,
			Title:     input.Title,
			Subtitle:  input.Subtitle,
			Link:      input.Link,
			Active:    active,
			SortOrder: input.SortOrder,
		}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create banner: " + err.Error()})
			return
		}

		c.JSON(http.StatusCreated, banner)
	}
}
