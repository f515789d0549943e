package service

import (
	"fmt"
	"testing"
	"time"

	"arkan22/cloth-api/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB opens a fresh in-memory database per test. The shared cache plus
// a single pooled connection keeps sqlite from handing each goroutine its
// own empty database.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		model.User{},
		model.Cloth{},
		model.Storage{},
		model.Buy{},
		model.VerificationToken{},
	))

	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string) *model.User {
	t.Helper()

	u := &model.User{
		ID:           id,
		Name:         "Test User",
		Email:        id + "@example.com",
		Number:       "08" + id,
		PasswordHash: "x",
		Address:      "Test Street 1",
	}
	require.NoError(t, db.Create(u).Error)

	return u
}

func seedCloth(t *testing.T, db *gorm.DB, qty int) (*model.Cloth, *model.Storage) {
	t.Helper()

	cloth := &model.Cloth{Name: "Shirt", Type: "shirt", Price: 15000}
	require.NoError(t, db.Create(cloth).Error)

	storage := &model.Storage{ClothID: cloth.ID, Location: "main", QuantityLimit: qty}
	require.NoError(t, db.Create(storage).Error)

	return cloth, storage
}

func storageQty(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()

	var s model.Storage
	require.NoError(t, db.First(&s, id).Error)

	return s.QuantityLimit
}

func seedBuy(t *testing.T, db *gorm.DB, userID string, clothID uint, qty, payStatus, confStatus int) *model.Buy {
	t.Helper()

	b := &model.Buy{
		UserID:             userID,
		ClothID:            clothID,
		Quantity:           qty,
		PaymentMethod:      "transfer",
		PaymentStatus:      payStatus,
		ConfirmationStatus: confStatus,
		CreatedAt:          time.Now(),
	}
	require.NoError(t, db.Create(b).Error)

	return b
}
