package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	DB *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{DB: db}
}

// List excludes the BLOB column; images go through FindImage
func (r *GalleryRepository) List(category string, limit, offset int) ([]entity.InspirationImage, error) {
	q := r.DB.Model(&entity.InspirationImage{}).
		Select("id, created_at, title, category, image_type, image_size, uploaded_by_id")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var items []entity.InspirationImage
	err := q.Order("id DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, err
}

func (r *GalleryRepository) FindImage(id uint) (*entity.InspirationImage, error) {
	var img entity.InspirationImage
	if err := r.DB.Select("image, image_type, image_size").First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *GalleryRepository) Create(img *entity.InspirationImage) error {
	return r.DB.Create(img).Error
}

func (r *GalleryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.InspirationImage{}, id).Error
}
