package entity

import (
	"gorm.io/gorm"
)

// Dish is a catalog record. The catalog is read-only at runtime: rows are
// created by seeding and never updated through the API.
type Dish struct {
	gorm.Model
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    Category `gorm:"index" json:"category"`
	Vegetarian  bool     `json:"vegetarian"`

	Ratings []Rating `json:"-"`
}
