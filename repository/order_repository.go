package repository

import (
	"time"

	"github.com/OmarZED/Delivery-System/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// OrderSummary is the list projection returned by GET /api/order/user.
type OrderSummary struct {
	ID           uint               `json:"id"`
	DeliveryTime time.Time          `json:"deliveryTime"`
	OrderTime    time.Time          `json:"orderTime"`
	Status       entity.OrderStatus `json:"status"`
	Price        float64            `json:"price"`
}

func (r *OrderRepository) ListForUser(userID uint) ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, delivery_time, order_time, status, price").
		Where("user_id = ?", userID).
		Scan(&out).Error
	return out, err
}

// FindForUser loads an order with items only when it belongs to userID.
func (r *OrderRepository) FindForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// SetDelivered transitions the order status unconditionally and reports
// whether a row owned by userID was hit.
func (r *OrderRepository) SetDelivered(orderID, userID uint) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND user_id = ?", orderID, userID).
		Update("status", entity.OrderDelivered)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
