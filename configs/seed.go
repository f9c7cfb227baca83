package configs

import (
	"log"

	"backend/entity"
	"golang.org/x/crypto/bcrypt"
)

// Seed the first admin from env
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// Seed lookup/status rows and the starter metal/stone catalogs
func SeedLookups() error {
	db := DB()

	// Product
	db.FirstOrCreate(&entity.ProductStatus{}, entity.ProductStatus{StatusName: "Draft"})
	db.FirstOrCreate(&entity.ProductStatus{}, entity.ProductStatus{StatusName: "Published"})
	db.FirstOrCreate(&entity.ProductStatus{}, entity.ProductStatus{StatusName: "Archived"})
	db.FirstOrCreate(&entity.ProductCategory{}, entity.ProductCategory{CategoryName: "Rings"})
	db.FirstOrCreate(&entity.ProductCategory{}, entity.ProductCategory{CategoryName: "Necklaces"})
	db.FirstOrCreate(&entity.ProductCategory{}, entity.ProductCategory{CategoryName: "Earrings"})
	db.FirstOrCreate(&entity.ProductCategory{}, entity.ProductCategory{CategoryName: "Bracelets"})
	db.FirstOrCreate(&entity.ProductCategory{}, entity.ProductCategory{CategoryName: "Pendants"})

	// Metals: modifier is a percent markup over the baseline metal
	db.FirstOrCreate(&entity.MetalType{}, entity.MetalType{Name: "Sterling Silver", PriceModifier: 0})
	db.FirstOrCreate(&entity.MetalType{}, entity.MetalType{Name: "14k Gold", PriceModifier: 12})
	db.FirstOrCreate(&entity.MetalType{}, entity.MetalType{Name: "18k Gold", PriceModifier: 18})
	db.FirstOrCreate(&entity.MetalType{}, entity.MetalType{Name: "22k Gold", PriceModifier: 26})
	db.FirstOrCreate(&entity.MetalType{}, entity.MetalType{Name: "Platinum", PriceModifier: 35})

	// Stones: modifier is INR per carat
	db.FirstOrCreate(&entity.StoneType{}, entity.StoneType{Name: "Cubic Zirconia", PriceModifier: 500})
	db.FirstOrCreate(&entity.StoneType{}, entity.StoneType{Name: "Amethyst", PriceModifier: 2000})
	db.FirstOrCreate(&entity.StoneType{}, entity.StoneType{Name: "Ruby", PriceModifier: 5000})
	db.FirstOrCreate(&entity.StoneType{}, entity.StoneType{Name: "Emerald", PriceModifier: 8000})
	db.FirstOrCreate(&entity.StoneType{}, entity.StoneType{Name: "Sapphire", PriceModifier: 6500})
	db.FirstOrCreate(&entity.StoneType{}, entity.StoneType{Name: "Lab Diamond", PriceModifier: 25000})
	db.FirstOrCreate(&entity.StoneType{}, entity.StoneType{Name: "Natural Diamond", PriceModifier: 90000})

	// Order
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "PendingAdvance"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "InProduction"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Shipped"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Delivered"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Cancelled"})

	// Payment
	db.FirstOrCreate(&entity.PaymentStatus{}, entity.PaymentStatus{StatusName: "Created"})
	db.FirstOrCreate(&entity.PaymentStatus{}, entity.PaymentStatus{StatusName: "Captured"})
	db.FirstOrCreate(&entity.PaymentStatus{}, entity.PaymentStatus{StatusName: "Failed"})

	return nil
}
