package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(p *entity.Payment) error {
	return r.DB.Create(p).Error
}

func (r *PaymentRepository) FindByPayPalOrderID(paypalOrderID string) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("pay_pal_order_id = ?", paypalOrderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) FindForOrder(orderID uint) ([]entity.Payment, error) {
	var items []entity.Payment
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

func (r *PaymentRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Payment{}).Where("id = ?", id).Updates(updates).Error
}

func (r *PaymentRepository) GetStatusIDByName(name string) (uint, error) {
	var st entity.PaymentStatus
	if err := r.DB.Where("status_name = ?", name).First(&st).Error; err != nil {
		return 0, err
	}
	return st.ID, nil
}
