package entity

import (
	"gorm.io/gorm"
)

// Basket is the user's mutable cart. One basket per user, created lazily on
// the first add and kept (emptied, not deleted) after checkout.
type Basket struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	Items []BasketItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
