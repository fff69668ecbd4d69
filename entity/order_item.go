package entity

import (
	"gorm.io/gorm"
)

// OrderItem copies the basket item's snapshot fields verbatim and is never
// mutated after the order is created.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"`

	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
	Amount int     `json:"amount"`
}
