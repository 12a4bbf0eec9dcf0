package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SharonKariuki/Soko/models"
)

type CreateProductInput struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Discount    float64  `json:"discount"`
	// Featured is accepted loosely: true, "true", 1 and "1" all mean true.
	Featured any `json:"featured"`
}

// coerceFeatured mirrors the storefront's tolerant flag parsing. JSON numbers
// decode as float64, so 1 arrives as 1.0.
func coerceFeatured(v any) bool {
	switch f := v.(type) {
	case bool:
		return f
	case string:
		return f == "true" || f == "1"
	case float64:
		return f == 1
	default:
		return false
	}
}

// POST /api/products (admin/poster)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Name == "" || input.Price == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Price:       *input.Price,
			Description: input.Description,
			Image:       input.Image,
			Category:    input.Category,
			Discount:    input.Discount,
			Featured:    coerceFeatured(input.Featured),
			CreatedBy:   c.GetString("user_id"),
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product: " + err.Error()})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
