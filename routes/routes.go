package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SharonKariuki/Soko/auth"
	"github.com/SharonKariuki/Soko/config"
	bannerControllers "github.com/SharonKariuki/Soko/controllers/banner"
	cartControllers "github.com/SharonKariuki/Soko/controllers/cart"
	orderControllers "github.com/SharonKariuki/Soko/controllers/order"
	productControllers "github.com/SharonKariuki/Soko/controllers/product"
	uploadControllers "github.com/SharonKariuki/Soko/controllers/upload"
	userControllers "github.com/SharonKariuki/Soko/controllers/user"
	"github.com/SharonKariuki/Soko/middleware"
	"github.com/SharonKariuki/Soko/models"
)

// SetupRoutes wires the full /api surface. Routes are grouped by the access
// they need: public, authenticated, and admin/poster gated.
func SetupRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.Service, cfg *config.Config) {
	api := r.Group("/api")

	// Public
	api.POST("/register", userControllers.Register(db))
	api.POST("/login", userControllers.Login(db, tokens))
	api.GET("/products", productControllers.GetProducts(db))
	api.GET("/products/featured", productControllers.GetFeaturedProducts(db))
	api.GET("/banner", bannerControllers.GetActiveBanner(db))

	// Any authenticated user
	authed := api.Group("")
	authed.Use(middleware.RequireAuth(tokens))
	{
		authed.POST("/upload", uploadControllers.UploadImage(cfg.UploadDir, cfg.PublicBaseURL))

		authed.POST("/cart", cartControllers.AddToCart(db))
		authed.GET("/cart", cartControllers.GetCart(db))
		authed.DELETE("/cart/:productId", cartControllers.RemoveCartItem(db))

		authed.POST("/orders", orderControllers.PlaceOrder(db))
		authed.GET("/orders", orderControllers.GetUserOrders(db))
		authed.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
	}

	// Catalog management, admin/poster only
	gated := api.Group("")
	gated.Use(middleware.RequireAuth(tokens), middleware.RequireRole(models.RoleAdmin, models.RolePoster))
	{
		gated.POST("/products", productControllers.CreateProduct(db))
		gated.PUT("/products/:id/featured", productControllers.SetFeatured(db))
		gated.DELETE("/products/:id", productControllers.DeleteProduct(db))
		gated.GET("/products/export", productControllers.ExportProductsToExcel(db))

		gated.POST("/banner", bannerControllers.CreateBanner(db))
	}
}
