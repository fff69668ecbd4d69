package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/OmarZED/Delivery-System/entity"
	"github.com/OmarZED/Delivery-System/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	BasketRepo *repository.BasketRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, basketRepo *repository.BasketRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, BasketRepo: basketRepo}
}

type CreateOrderIn struct {
	DeliveryTime time.Time `json:"deliveryTime" binding:"required"`
	Address      string    `json:"address" binding:"required"`
}

type OrderItemView struct {
	ID     uint    `json:"id"`
	DishID uint    `json:"dishId"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
	Amount int     `json:"amount"`
}

type OrderView struct {
	ID           uint               `json:"id"`
	DeliveryTime time.Time          `json:"deliveryTime"`
	OrderTime    time.Time          `json:"orderTime"`
	Status       entity.OrderStatus `json:"status"`
	Address      string             `json:"address"`
	Price        float64            `json:"price"`
	Items        []OrderItemView    `json:"items"`
}

func orderView(o *entity.Order) *OrderView {
	v := &OrderView{
		ID: o.ID, DeliveryTime: o.DeliveryTime, OrderTime: o.OrderTime,
		Status: o.Status, Address: o.Address, Price: o.Price,
		Items: make([]OrderItemView, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		v.Items = append(v.Items, OrderItemView{
			ID: it.ID, DishID: it.DishID, Name: it.Name,
			Price: it.Price, Image: it.Image, Amount: it.Amount,
		})
	}
	return v
}

// Create snapshots the user's basket into a new order. The order insert, the
// item copies and the basket clear all run in one transaction, so a failure
// at any step leaves both basket and order log untouched.
func (s *OrderService) Create(userID uint, in *CreateOrderIn) (*OrderView, error) {
	if in.Address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidArgument)
	}
	if in.DeliveryTime.Before(time.Now()) {
		return nil, fmt.Errorf("%w: delivery time must be in the future", ErrInvalidArgument)
	}

	basket, err := s.BasketRepo.FindWithItems(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBasketEmpty
		}
		return nil, err
	}
	if len(basket.Items) == 0 {
		return nil, ErrBasketEmpty
	}

	order := entity.Order{
		UserID:       userID,
		DeliveryTime: in.DeliveryTime,
		OrderTime:    time.Now(),
		Status:       entity.OrderInProcess,
		Address:      in.Address,
	}
	for _, it := range basket.Items {
		order.Price += it.Price * float64(it.Amount)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		// Copy the basket's snapshot fields; the dish row is not re-read, so
		// later catalog changes never touch placed orders.
		for _, it := range basket.Items {
			oi := entity.OrderItem{
				OrderID: order.ID,
				DishID:  it.DishID,
				Name:    it.Name,
				Price:   it.Price,
				Image:   it.Image,
				Amount:  it.Amount,
			}
			if err := s.Repo.CreateItem(tx, &oi); err != nil {
				return err
			}
		}
		return s.BasketRepo.ClearItems(tx, basket.ID)
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{"userId": userID, "basketId": basket.ID}).
			WithError(err).Error("order creation failed")
		return nil, err
	}

	return s.Detail(userID, order.ID)
}

func (s *OrderService) ListForUser(userID uint) ([]repository.OrderSummary, error) {
	return s.Repo.ListForUser(userID)
}

// Detail returns the full order only when it belongs to userID; a foreign
// order is indistinguishable from a missing one.
func (s *OrderService) Detail(userID, orderID uint) (*OrderView, error) {
	o, err := s.Repo.FindForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return orderView(o), nil
}

// ConfirmDelivery sets the status to Delivered. The transition is
// unconditional; there is no guard on the current status.
func (s *OrderService) ConfirmDelivery(userID, orderID uint) error {
	ok, err := s.Repo.SetDelivered(orderID, userID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"userId": userID, "orderId": orderID}).
			WithError(err).Error("status update failed")
		return err
	}
	if !ok {
		return ErrOrderNotFound
	}
	return nil
}
