package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type DesignRequestRepository struct {
	DB *gorm.DB
}

func NewDesignRequestRepository(db *gorm.DB) *DesignRequestRepository {
	return &DesignRequestRepository{DB: db}
}

func (r *DesignRequestRepository) Create(tx *gorm.DB, req *entity.DesignRequest) error {
	return tx.Create(req).Error
}

func (r *DesignRequestRepository) FindByID(id uint) (*entity.DesignRequest, error) {
	var req entity.DesignRequest
	if err := r.DB.Preload("Quotes").First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *DesignRequestRepository) ListForUser(userID uint) ([]entity.DesignRequest, error) {
	var items []entity.DesignRequest
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&items).Error
	return items, err
}

func (r *DesignRequestRepository) ListByStatus(status string, limit, offset int) ([]entity.DesignRequest, error) {
	q := r.DB.Order("id DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var items []entity.DesignRequest
	err := q.Find(&items).Error
	return items, err
}

func (r *DesignRequestRepository) UpdateStatus(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&entity.DesignRequest{}).Where("id = ?", id).Update("status", status).Error
}

func (r *DesignRequestRepository) AddImage(tx *gorm.DB, img *entity.DesignRequestImage) error {
	return tx.Create(img).Error
}

// ----- quotes -----

func (r *DesignRequestRepository) CreateQuote(tx *gorm.DB, q *entity.Quote) error {
	return tx.Create(q).Error
}

func (r *DesignRequestRepository) FindQuote(id uint) (*entity.Quote, error) {
	var q entity.Quote
	if err := r.DB.First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *DesignRequestRepository) LatestOfferedQuote(requestID uint) (*entity.Quote, error) {
	var q entity.Quote
	err := r.DB.Where("design_request_id = ? AND status = ?", requestID, entity.QuoteOffered).
		Order("id DESC").First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *DesignRequestRepository) UpdateQuoteStatus(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&entity.Quote{}).Where("id = ?", id).Update("status", status).Error
}
