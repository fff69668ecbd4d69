package services

import (
	"errors"
	"fmt"

	"github.com/OmarZED/Delivery-System/entity"
	"github.com/OmarZED/Delivery-System/repository"
	"gorm.io/gorm"
)

type DishService struct {
	Repo       *repository.DishRepository
	RatingRepo *repository.RatingRepository
}

func NewDishService(repo *repository.DishRepository, ratingRepo *repository.RatingRepository) *DishService {
	return &DishService{Repo: repo, RatingRepo: ratingRepo}
}

type DishView struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Image       string          `json:"image"`
	Category    entity.Category `json:"category"`
	Vegetarian  bool            `json:"vegetarian"`

	Rating repository.DishAggregate `json:"rating"`
}

// List filters, sorts and paginates the catalog (fixed page size 10) and
// decorates every dish with its rating aggregate.
func (s *DishService) List(f repository.DishFilter) ([]DishView, error) {
	for _, c := range f.Categories {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidArgument, c)
		}
	}
	if f.SortBy != "" && !f.SortBy.Valid() {
		return nil, fmt.Errorf("%w: unknown sorting %q", ErrInvalidArgument, f.SortBy)
	}

	dishes, err := s.Repo.List(f)
	if err != nil {
		return nil, err
	}

	out := make([]DishView, 0, len(dishes))
	for _, d := range dishes {
		agg, err := s.RatingRepo.Aggregate(d.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, dishView(&d, agg))
	}
	return out, nil
}

func (s *DishService) Get(id uint) (*DishView, error) {
	dish, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}
	agg, err := s.RatingRepo.Aggregate(dish.ID)
	if err != nil {
		return nil, err
	}
	v := dishView(dish, agg)
	return &v, nil
}

func dishView(d *entity.Dish, agg repository.DishAggregate) DishView {
	return DishView{
		ID: d.ID, Name: d.Name, Description: d.Description, Price: d.Price,
		Image: d.Image, Category: d.Category, Vegetarian: d.Vegetarian, Rating: agg,
	}
}
