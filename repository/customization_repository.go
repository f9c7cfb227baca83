package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type CustomizationRepository struct {
	DB *gorm.DB
}

func NewCustomizationRepository(db *gorm.DB) *CustomizationRepository {
	return &CustomizationRepository{DB: db}
}

func (r *CustomizationRepository) Create(req *entity.CustomizationRequest) error {
	return r.DB.Create(req).Error
}

func (r *CustomizationRepository) FindByID(id uint) (*entity.CustomizationRequest, error) {
	var req entity.CustomizationRequest
	if err := r.DB.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *CustomizationRepository) ListForUser(userID uint) ([]entity.CustomizationRequest, error) {
	var items []entity.CustomizationRequest
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&items).Error
	return items, err
}

func (r *CustomizationRepository) ListAll(status string, limit, offset int) ([]entity.CustomizationRequest, error) {
	q := r.DB.Order("id DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var items []entity.CustomizationRequest
	err := q.Find(&items).Error
	return items, err
}

func (r *CustomizationRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.CustomizationRequest{}).Where("id = ?", id).Update("status", status).Error
}
