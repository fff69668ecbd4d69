package entity

import (
	"gorm.io/gorm"
)

// Rating holds at most one score per (user, dish). Re-rating updates the row
// in place; UpdatedAt is the rate timestamp.
type Rating struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_rating_user_dish" json:"userId"`
	User   User `json:"-"`

	DishID uint `gorm:"uniqueIndex:idx_rating_user_dish" json:"dishId"`
	Dish   Dish `json:"-"`

	Score int `json:"score"`
}
