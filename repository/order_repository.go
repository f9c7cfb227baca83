package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) GetOrder(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(id, userID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	var items []entity.Order
	err := r.DB.Preload("OrderStatus").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) ListAll(statusID uint, limit, offset int) ([]entity.Order, error) {
	q := r.DB.Preload("OrderStatus")
	if statusID != 0 {
		q = q.Where("order_status_id = ?", statusID)
	}
	var items []entity.Order
	err := q.Order("id DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, err
}

func (r *OrderRepository) Items(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var st entity.OrderStatus
	if err := r.DB.Where("status_name = ?", name).First(&st).Error; err != nil {
		return 0, err
	}
	return st.ID, nil
}

// UpdateStatusGuard flips the status only when the order is still in `from`;
// the affected-row count tells the caller whether the transition won.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, from, to uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id = ?", orderID, from).
		Update("order_status_id", to)
	return res.RowsAffected, res.Error
}
