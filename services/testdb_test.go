package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/OmarZED/Delivery-System/entity"
	"github.com/OmarZED/Delivery-System/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory sqlite database. The name is derived
// from the test so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Dish{},
		&entity.Basket{}, &entity.BasketItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Rating{},
		&entity.RevokedToken{},
	))
	return db
}

func seedDish(t *testing.T, db *gorm.DB, name string, price float64, category entity.Category, vegetarian bool) *entity.Dish {
	t.Helper()
	d := &entity.Dish{Name: name, Description: name, Price: price, Image: "img/" + name, Category: category, Vegetarian: vegetarian}
	require.NoError(t, db.Create(d).Error)
	return d
}

func newBasketService(db *gorm.DB) *BasketService {
	return NewBasketService(db, repository.NewBasketRepository(db), repository.NewDishRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewBasketRepository(db))
}

func newRatingService(db *gorm.DB) *RatingService {
	return NewRatingService(repository.NewRatingRepository(db), repository.NewDishRepository(db))
}

func newDishService(db *gorm.DB) *DishService {
	return NewDishService(repository.NewDishRepository(db), repository.NewRatingRepository(db))
}
