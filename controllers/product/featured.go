package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SharonKariuki/Soko/models"
)

type SetFeaturedInput struct {
	// Pointer so a missing field is distinguishable from false. Unlike
	// product creation, this endpoint takes a strict boolean only.
	Featured *bool `json:"featured"`
}

// PUT /api/products/:id/featured (admin/poster)
func SetFeatured(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetFeaturedInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Featured == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "featured must be a boolean"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product: " + err.Error()})
			return
		}

		product.Featured = *input.Featured
		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
