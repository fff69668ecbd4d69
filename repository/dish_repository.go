package repository

import (
	"github.com/OmarZED/Delivery-System/entity"
	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

// PageSize is fixed for catalog listing; there is no total-count signal.
const PageSize = 10

// avgScoreExpr computes the dish's average rating inline for rating sorts.
const avgScoreExpr = "(SELECT COALESCE(AVG(score), 0) FROM ratings WHERE ratings.dish_id = dishes.id AND ratings.deleted_at IS NULL)"

type DishFilter struct {
	Categories []entity.Category
	Vegetarian *bool
	SortBy     entity.DishSorting
	Page       int
}

func (r *DishRepository) List(f DishFilter) ([]entity.Dish, error) {
	q := r.DB.Model(&entity.Dish{})

	if len(f.Categories) > 0 {
		q = q.Where("category IN ?", f.Categories)
	}
	if f.Vegetarian != nil {
		q = q.Where("vegetarian = ?", *f.Vegetarian)
	}

	switch f.SortBy {
	case entity.SortNameAsc:
		q = q.Order("name ASC")
	case entity.SortNameDesc:
		q = q.Order("name DESC")
	case entity.SortPriceAsc:
		q = q.Order("price ASC")
	case entity.SortPriceDesc:
		q = q.Order("price DESC")
	case entity.SortRatingAsc:
		q = q.Order(avgScoreExpr + " ASC")
	case entity.SortRatingDesc:
		q = q.Order(avgScoreExpr + " DESC")
	default:
		q = q.Order("id ASC")
	}

	page := f.Page
	if page < 1 {
		page = 1
	}

	var dishes []entity.Dish
	err := q.Limit(PageSize).Offset((page - 1) * PageSize).Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var dish entity.Dish
	if err := r.DB.First(&dish, id).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *DishRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Dish{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
