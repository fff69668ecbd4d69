package configs

import (
	"github.com/OmarZED/Delivery-System/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	database, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

// SetupDatabase migrates the schema.
func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Dish{},
		&entity.Basket{}, &entity.BasketItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Rating{},
		&entity.RevokedToken{},
	)
}
