package services

import (
	"fmt"
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.ProductCategory{}, &entity.ProductStatus{}, &entity.Product{},
		&entity.MetalType{}, &entity.StoneType{},
		&entity.DesignRequest{}, &entity.DesignRequestImage{}, &entity.Quote{},
		&entity.CustomizationRequest{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{},
		&entity.PaymentStatus{}, &entity.Payment{},
	))

	for _, name := range []string{"PendingAdvance", "InProduction", "Shipped", "Delivered", "Cancelled"} {
		require.NoError(t, db.Create(&entity.OrderStatus{StatusName: name}).Error)
	}
	for _, name := range []string{"Created", "Captured", "Failed"} {
		require.NoError(t, db.Create(&entity.PaymentStatus{StatusName: name}).Error)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Role: "customer"}
	require.NoError(t, db.Create(u).Error)
	return u
}
