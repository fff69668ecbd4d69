package entity

import (
	"gorm.io/gorm"
)

// BasketItem carries a snapshot of the dish's name/price/image taken at
// add-time, so later catalog changes do not leak into an open basket.
type BasketItem struct {
	gorm.Model
	BasketID uint   `json:"basketId"`
	Basket   Basket `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"`

	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
	Amount int     `json:"amount"`
}
