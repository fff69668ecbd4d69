package services

import (
	"errors"
	"fmt"

	"github.com/OmarZED/Delivery-System/entity"
	"github.com/OmarZED/Delivery-System/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type BasketService struct {
	DB         *gorm.DB
	BasketRepo *repository.BasketRepository
	DishRepo   *repository.DishRepository
}

func NewBasketService(db *gorm.DB, br *repository.BasketRepository, dr *repository.DishRepository) *BasketService {
	return &BasketService{DB: db, BasketRepo: br, DishRepo: dr}
}

type BasketItemView struct {
	ID     uint    `json:"id"`
	DishID uint    `json:"dishId"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
	Amount int     `json:"amount"`
	Total  float64 `json:"totalPrice"`
}

type BasketView struct {
	ID         uint             `json:"id"`
	UserID     uint             `json:"userId"`
	Items      []BasketItemView `json:"items"`
	TotalPrice float64          `json:"totalPrice"`
}

func basketView(b *entity.Basket) *BasketView {
	v := &BasketView{ID: b.ID, UserID: b.UserID, Items: make([]BasketItemView, 0, len(b.Items))}
	for _, it := range b.Items {
		line := it.Price * float64(it.Amount)
		v.Items = append(v.Items, BasketItemView{
			ID: it.ID, DishID: it.DishID, Name: it.Name, Price: it.Price,
			Image: it.Image, Amount: it.Amount, Total: line,
		})
		v.TotalPrice += line
	}
	return v
}

// AddItem puts amount units of a dish into the user's basket, snapshotting
// the dish's current name/price/image. An existing line for the same dish is
// incremented instead of duplicated.
func (s *BasketService) AddItem(userID, dishID uint, amount int) (*BasketView, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	}

	dish, err := s.DishRepo.FindByID(dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}

	basket, err := s.BasketRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.BasketRepo.FindItem(tx, basket.ID, dishID)
		if err == nil {
			item.Amount += amount
			return s.BasketRepo.SaveItem(tx, item)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.BasketRepo.CreateItem(tx, &entity.BasketItem{
			BasketID: basket.ID,
			DishID:   dish.ID,
			Name:     dish.Name,
			Price:    dish.Price,
			Image:    dish.Image,
			Amount:   amount,
		})
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{"userId": userID, "dishId": dishID}).
			WithError(err).Error("add to basket failed")
		return nil, err
	}

	return s.Get(userID)
}

// Get returns the basket view, or ErrBasketNotFound if the user has never
// added anything.
func (s *BasketService) Get(userID uint) (*BasketView, error) {
	basket, err := s.BasketRepo.FindWithItems(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBasketNotFound
		}
		return nil, err
	}
	return basketView(basket), nil
}

// DecrementItem lowers the line amount by one and removes the line when it
// reaches zero. A missing basket or item is a no-op, not an error.
func (s *BasketService) DecrementItem(userID, dishID uint) error {
	return s.changeItem(userID, dishID, func(tx *gorm.DB, item *entity.BasketItem) error {
		item.Amount--
		if item.Amount <= 0 {
			return s.BasketRepo.DeleteItem(tx, item.ID)
		}
		return s.BasketRepo.SaveItem(tx, item)
	})
}

// RemoveItem deletes the line outright. A missing basket or item is a no-op.
func (s *BasketService) RemoveItem(userID, dishID uint) error {
	return s.changeItem(userID, dishID, func(tx *gorm.DB, item *entity.BasketItem) error {
		return s.BasketRepo.DeleteItem(tx, item.ID)
	})
}

func (s *BasketService) changeItem(userID, dishID uint, apply func(*gorm.DB, *entity.BasketItem) error) error {
	basket, err := s.BasketRepo.FindWithItems(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.BasketRepo.FindItem(tx, basket.ID, dishID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return apply(tx, item)
	})
}

// Clear removes every item and reports whether a basket existed. Idempotent.
func (s *BasketService) Clear(userID uint) (bool, error) {
	basket, err := s.BasketRepo.FindWithItems(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.BasketRepo.ClearItems(tx, basket.ID)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
