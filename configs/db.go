package configs

import (
	"backend/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.ProductCategory{}, &entity.ProductStatus{}, &entity.Product{},
		&entity.MetalType{}, &entity.StoneType{},
		&entity.InspirationImage{},
		&entity.DesignRequest{}, &entity.DesignRequestImage{}, &entity.Quote{},
		&entity.CustomizationRequest{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{},
		&entity.PaymentStatus{}, &entity.Payment{},
	)
}
