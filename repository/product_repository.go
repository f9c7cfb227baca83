package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

type ProductFilter struct {
	CategoryID uint
	StatusName string
	Limit      int
	Offset     int
}

func (r *ProductRepository) filtered(f ProductFilter) *gorm.DB {
	q := r.DB.Model(&entity.Product{})
	if f.CategoryID != 0 {
		q = q.Where("product_category_id = ?", f.CategoryID)
	}
	if f.StatusName != "" {
		q = q.Joins("JOIN product_statuses ON product_statuses.id = products.product_status_id").
			Where("product_statuses.status_name = ?", f.StatusName)
	}
	return q
}

// List excludes the BLOB column; images go through FindImage
func (r *ProductRepository) List(f ProductFilter) ([]entity.Product, int64, error) {
	var total int64
	if err := r.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 24
	}
	var items []entity.Product
	err := r.filtered(f).
		Select("products.id, products.created_at, products.updated_at, products.name, products.short_description, products.tags, products.calculated_price_usd, products.metal_type, products.main_stone_type, products.product_category_id, products.product_status_id, products.image_type").
		Order("products.id DESC").Limit(f.Limit).Offset(f.Offset).
		Find(&items).Error
	return items, total, err
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.
		Preload("ProductCategory").
		Preload("ProductStatus").
		Omit("image").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindImage(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Select("image, image_type, image_size").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Product{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ProductRepository) SaveImage(id uint, data []byte, contentType string) error {
	return r.DB.Model(&entity.Product{}).Where("id = ?", id).
		Updates(map[string]any{
			"image":      data,
			"image_type": contentType,
			"image_size": len(data),
		}).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}
