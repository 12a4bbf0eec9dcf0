package userControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/SharonKariuki/Soko/auth"
	"github.com/SharonKariuki/Soko/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	// A pooled second connection would get its own empty in-memory database.
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	assert.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func setupRouter(db *gorm.DB, tokens *auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", Register(db))
	router.POST("/login", Login(db, tokens))
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegister_Success(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db, auth.NewService("test-secret"))

	w := postJSON(router, "/register", gin.H{
		"name":     "Wanjiku",
		"email":    "wanjiku@example.com",
		"password": "hunter22",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	assert.NoError(t, db.Where("email = ?", "wanjiku@example.com").First(&user).Error)
	assert.Equal(t, models.RoleBuyer, user.Role)
	assert.NotEqual(t, "hunter22", user.Password) // stored hashed
	assert.NotEmpty(t, user.ID)
}

func TestRegister_MissingFields(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db, auth.NewService("test-secret"))

	w := postJSON(router, "/register", gin.H{"email": "x@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db, auth.NewService("test-secret"))

	body := gin.H{"name": "A", "email": "dup@example.com", "password": "pw123456"}
	assert.Equal(t, http.StatusCreated, postJSON(router, "/register", body).Code)

	w := postJSON(router, "/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegister_InvalidRole(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db, auth.NewService("test-secret"))

	w := postJSON(router, "/register", gin.H{
		"name": "A", "email": "a@example.com", "password": "pw", "role": "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_Success(t *testing.T) {
	db := setupTestDB(t)
	tokens := auth.NewService("test-secret")
	router := setupRouter(db, tokens)

	postJSON(router, "/register", gin.H{
		"name": "Admin", "email": "admin@example.com", "password": "pw123456", "role": "admin",
	})

	w := postJSON(router, "/login", gin.H{"email": "admin@example.com", "password": "pw123456"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims, err := tokens.Verify(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db, auth.NewService("test-secret"))

	postJSON(router, "/register", gin.H{"name": "A", "email": "a@example.com", "password": "correct"})

	w := postJSON(router, "/login", gin.H{"email": "a@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestLogin_UnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db, auth.NewService("test-secret"))

	w := postJSON(router, "/login", gin.H{"email": "ghost@example.com", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")
}
