package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arkan22/cloth-api/middleware"
	"arkan22/cloth-api/model"
	"arkan22/cloth-api/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testAPI wires the buy routes behind a stub auth middleware so handler
// behavior can be exercised without minting real tokens.
func testAPI(t *testing.T, userID string, role int) (*API, *gin.Engine) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		model.User{},
		model.Cloth{},
		model.Storage{},
		model.Buy{},
		model.VerificationToken{},
	))

	a := &API{
		DB:    db,
		Argon: security.NewArgon(),
	}

	r := gin.New()
	r.Use(middleware.NewRequestIDMiddleware(), func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("userRole", role)
	})

	r.POST("/api/buys", a.BuyAdd)
	r.GET("/api/buys", a.BuyFetchBulk)
	r.GET("/api/buys/me", a.BuyFetchSelf)
	r.GET("/api/buys/:id", a.BuyFetch)
	r.POST("/api/buys/:id", a.BuyEdit)
	r.POST("/api/buys/:id/confirm", a.BuyConfirm)
	r.DELETE("/api/buys/:id", a.BuyDelete)
	r.POST("/api/users", a.UserRegister)
	r.POST("/api/users/login", a.UserLogin)
	r.GET("/api/users/verify", a.UserVerify)
	r.POST("/api/users/password/reset", a.UserPasswordReset)

	return a, r
}

func jsonReq(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedShop(t *testing.T, db *gorm.DB, qty int) (*model.User, *model.Cloth, *model.Storage) {
	t.Helper()

	now := time.Now()
	user := &model.User{
		ID:           "buyer",
		Name:         "Buyer",
		Email:        "buyer@example.com",
		Number:       "0811",
		PasswordHash: "x",
		VerifiedAt:   &now,
	}
	require.NoError(t, db.Create(user).Error)

	cloth := &model.Cloth{Name: "Shirt", Type: "shirt", Price: 15000}
	require.NoError(t, db.Create(cloth).Error)

	storage := &model.Storage{ClothID: cloth.ID, QuantityLimit: qty}
	require.NoError(t, db.Create(storage).Error)

	return user, cloth, storage
}

func TestBuyAddEndpoint(t *testing.T) {
	a, r := testAPI(t, "buyer", model.RoleCustomer)
	_, cloth, storage := seedShop(t, a.DB, 5)

	w := jsonReq(r, http.MethodPost, "/api/buys", gin.H{
		"cloth_id":       cloth.ID,
		"quantity":       3,
		"payment_method": "transfer",
		// Client-supplied statuses must be ignored
		"payment_status":      1,
		"confirmation_status": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Buy model.Buy `json:"buy"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "buyer", resp.Buy.UserID)
	assert.Equal(t, model.PaymentUnpaid, resp.Buy.PaymentStatus)
	assert.Equal(t, model.ConfirmationPending, resp.Buy.ConfirmationStatus)

	var s model.Storage
	require.NoError(t, a.DB.First(&s, storage.ID).Error)
	assert.Equal(t, 2, s.QuantityLimit)
}

func TestBuyAddEndpointInsufficientStock(t *testing.T) {
	a, r := testAPI(t, "buyer", model.RoleCustomer)
	_, cloth, _ := seedShop(t, a.DB, 2)

	w := jsonReq(r, http.MethodPost, "/api/buys", gin.H{
		"cloth_id":       cloth.ID,
		"quantity":       3,
		"payment_method": "transfer",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBuyAddEndpointValidation(t *testing.T) {
	a, r := testAPI(t, "buyer", model.RoleCustomer)
	_, cloth, _ := seedShop(t, a.DB, 5)

	w := jsonReq(r, http.MethodPost, "/api/buys", gin.H{
		"cloth_id":       cloth.ID,
		"quantity":       0,
		"payment_method": "transfer",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = jsonReq(r, http.MethodPost, "/api/buys", gin.H{
		"cloth_id": cloth.ID,
		"quantity": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = jsonReq(r, http.MethodPost, "/api/buys", gin.H{
		"cloth_id":       9999,
		"quantity":       1,
		"payment_method": "transfer",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuyAddCustomerCannotSpoofUser(t *testing.T) {
	a, r := testAPI(t, "buyer", model.RoleCustomer)
	_, cloth, _ := seedShop(t, a.DB, 5)

	w := jsonReq(r, http.MethodPost, "/api/buys", gin.H{
		"user_id":        "someone-else",
		"cloth_id":       cloth.ID,
		"quantity":       1,
		"payment_method": "transfer",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var buy model.Buy
	require.NoError(t, a.DB.First(&buy).Error)
	assert.Equal(t, "buyer", buy.UserID)
}

func TestBuyConfirmEndpoint(t *testing.T) {
	a, r := testAPI(t, "staff", 1)
	user, cloth, _ := seedShop(t, a.DB, 5)

	buy := &model.Buy{UserID: user.ID, ClothID: cloth.ID, Quantity: 1, PaymentMethod: "transfer"}
	require.NoError(t, a.DB.Create(buy).Error)

	w := jsonReq(r, http.MethodPost, fmt.Sprintf("/api/buys/%d/confirm", buy.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Idempotent on repeat
	w = jsonReq(r, http.MethodPost, fmt.Sprintf("/api/buys/%d/confirm", buy.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = jsonReq(r, http.MethodPost, "/api/buys/999/confirm", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuyDeleteEndpoint(t *testing.T) {
	_, r := testAPI(t, "staff", 1)

	w := jsonReq(r, http.MethodDelete, "/api/buys/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuyListEndpointFilters(t *testing.T) {
	a, r := testAPI(t, "buyer", model.RoleCustomer)
	user, cloth, _ := seedShop(t, a.DB, 50)

	for i := 0; i < 3; i++ {
		require.NoError(t, a.DB.Create(&model.Buy{
			UserID:        user.ID,
			ClothID:       cloth.ID,
			Quantity:      1,
			PaymentMethod: "transfer",
			PaymentStatus: i % 2,
		}).Error)
	}

	w := jsonReq(r, http.MethodGet, "/api/buys/me?payment_status=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Buys struct {
			Buys  []model.Buy `json:"buys"`
			Total int64       `json:"total"`
		} `json:"buys"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Buys.Buys, 1)
	assert.EqualValues(t, 1, resp.Buys.Total)

	w = jsonReq(r, http.MethodGet, "/api/buys/me?buys_page=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	a, r := testAPI(t, "", model.RoleCustomer)
	seedShop(t, a.DB, 1)

	w := jsonReq(r, http.MethodPost, "/api/users", gin.H{
		"name":     "Someone",
		"email":    "buyer@example.com",
		"number":   "0899",
		"password": "supersecret",
		"address":  "Somewhere 2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}
