package entity

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderInProcess OrderStatus = "InProcess"
	OrderDelivered OrderStatus = "Delivered"
)

// Order is an immutable snapshot of a basket at checkout. Price holds the
// computed total (sum of item price*amount) stored at creation.
type Order struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	DeliveryTime time.Time   `json:"deliveryTime"`
	OrderTime    time.Time   `json:"orderTime"`
	Status       OrderStatus `json:"status"`
	Address      string      `json:"address"`
	Price        float64     `json:"price"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
