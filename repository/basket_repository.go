package repository

import (
	"errors"

	"github.com/OmarZED/Delivery-System/entity"
	"gorm.io/gorm"
)

type BasketRepository struct {
	DB *gorm.DB
}

func NewBasketRepository(db *gorm.DB) *BasketRepository {
	return &BasketRepository{DB: db}
}

// FindWithItems returns the user's basket with items, or
// gorm.ErrRecordNotFound if the user never added anything.
func (r *BasketRepository) FindWithItems(userID uint) (*entity.Basket, error) {
	var b entity.Basket
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetOrCreate lazily creates the user's basket on first add.
func (r *BasketRepository) GetOrCreate(userID uint) (*entity.Basket, error) {
	var b entity.Basket
	err := r.DB.Where("user_id = ?", userID).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		b = entity.Basket{UserID: userID}
		if err := r.DB.Create(&b).Error; err != nil {
			return nil, err
		}
		return &b, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BasketRepository) FindItem(tx *gorm.DB, basketID, dishID uint) (*entity.BasketItem, error) {
	var item entity.BasketItem
	if err := tx.Where("basket_id = ? AND dish_id = ?", basketID, dishID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *BasketRepository) SaveItem(tx *gorm.DB, item *entity.BasketItem) error {
	return tx.Save(item).Error
}

func (r *BasketRepository) CreateItem(tx *gorm.DB, item *entity.BasketItem) error {
	return tx.Create(item).Error
}

func (r *BasketRepository) DeleteItem(tx *gorm.DB, itemID uint) error {
	return tx.Delete(&entity.BasketItem{}, itemID).Error
}

// ClearItems removes every item; the basket row itself is kept.
func (r *BasketRepository) ClearItems(tx *gorm.DB, basketID uint) error {
	return tx.Where("basket_id = ?", basketID).Delete(&entity.BasketItem{}).Error
}
