package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/SharonKariuki/Soko/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	// A pooled second connection would get its own empty in-memory database.
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	assert.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func setupRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	asUser := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", userID)
			h(c)
		}
	}
	router.POST("/orders", asUser(PlaceOrder(db)))
	router.GET("/orders", asUser(GetUserOrders(db)))
	return router
}

func seedCart(t *testing.T, db *gorm.DB, userID string, lines map[uint]int) models.Cart {
	cart := models.Cart{UserID: userID}
	assert.NoError(t, db.Create(&cart).Error)
	for productID, qty := range lines {
		item := models.CartItem{
			CartID:    cart.CartID,
			ProductID: productID,
			Quantity:  qty,
			AddedAt:   time.Now(),
		}
		assert.NoError(t, db.Create(&item).Error)
	}
	return cart
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db, "user-1")

	// No cart at all.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/orders", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")

	// Cart exists but has no lines.
	seedCart(t, db, "user-1", nil)
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/orders", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrder_SnapshotsCartAndClearsIt(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db, "user-1")

	first := models.Product{Name: "Kikoi", Price: 700}
	second := models.Product{Name: "Soapstone bowl", Price: 1200}
	assert.NoError(t, db.Create(&first).Error)
	assert.NoError(t, db.Create(&second).Error)

	cart := seedCart(t, db, "user-1", map[uint]int{first.ID: 2, second.ID: 1})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/orders", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "user-1", order.UserID)
	assert.Len(t, order.Items, 2)

	quantities := map[uint]int{}
	for _, item := range order.Items {
		quantities[item.ProductID] = item.Quantity
	}
	assert.Equal(t, 2, quantities[first.ID])
	assert.Equal(t, 1, quantities[second.ID])

	// Cart row survives; its lines do not.
	var remaining int64
	assert.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.CartID).Count(&remaining).Error)
	assert.Zero(t, remaining)

	var persisted models.Cart
	assert.NoError(t, db.First(&persisted, "user_id = ?", "user-1").Error)
}

func TestGetUserOrders_ScopedToCaller(t *testing.T) {
	db := setupTestDB(t)

	product := models.Product{Name: "Maasai beads", Price: 300}
	assert.NoError(t, db.Create(&product).Error)

	mine := models.Order{UserID: "user-1", Items: []models.OrderItem{{ProductID: product.ID, Quantity: 3}}}
	theirs := models.Order{UserID: "user-2", Items: []models.OrderItem{{ProductID: product.ID, Quantity: 1}}}
	assert.NoError(t, db.Create(&mine).Error)
	assert.NoError(t, db.Create(&theirs).Error)

	router := setupRouter(db, "user-1")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/orders", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)
	assert.Equal(t, "user-1", orders[0].UserID)
	assert.Equal(t, "Maasai beads", orders[0].Items[0].Product.Name)
}
