package repository

import (
	"github.com/OmarZED/Delivery-System/entity"
	"gorm.io/gorm"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

// UserHasOrderedDish reports whether any of the user's orders contains an
// item for the dish. This is the rating-eligibility rule.
func (r *RatingRepository) UserHasOrderedDish(userID, dishID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND order_items.dish_id = ?", userID, dishID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RatingRepository) FindByUserAndDish(userID, dishID uint) (*entity.Rating, error) {
	var rating entity.Rating
	if err := r.DB.Where("user_id = ? AND dish_id = ?", userID, dishID).First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) Create(rating *entity.Rating) error {
	return r.DB.Create(rating).Error
}

func (r *RatingRepository) Save(rating *entity.Rating) error {
	return r.DB.Save(rating).Error
}

// DishAggregate holds the mean score and count for one dish. Average is 0
// when the dish has no ratings.
type DishAggregate struct {
	AverageRating float64 `json:"averageRating"`
	RatingsCount  int64   `json:"ratingsCount"`
}

func (r *RatingRepository) Aggregate(dishID uint) (DishAggregate, error) {
	var a DishAggregate
	err := r.DB.Model(&entity.Rating{}).
		Where("dish_id = ?", dishID).
		Select("COALESCE(AVG(score), 0) AS average_rating, COUNT(*) AS ratings_count").
		Scan(&a).Error
	return a, err
}
