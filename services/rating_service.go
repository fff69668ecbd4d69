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

type RatingService struct {
	Repo     *repository.RatingRepository
	DishRepo *repository.DishRepository
}

func NewRatingService(repo *repository.RatingRepository, dishRepo *repository.DishRepository) *RatingService {
	return &RatingService{Repo: repo, DishRepo: dishRepo}
}

type RatingView struct {
	DishID  uint      `json:"dishId"`
	Score   int       `json:"score"`
	RatedAt time.Time `json:"ratedAt"`
}

// CanRate reports rating eligibility: the user must have at least one order
// containing the dish. Pure query, no mutation.
func (s *RatingService) CanRate(userID, dishID uint) (bool, error) {
	return s.Repo.UserHasOrderedDish(userID, dishID)
}

// Rate stores the user's score for a dish. A second rating by the same user
// for the same dish overwrites the first in place.
func (s *RatingService) Rate(userID, dishID uint, score int) (*RatingView, error) {
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("%w: score must be between 1 and 5", ErrInvalidArgument)
	}

	exists, err := s.DishRepo.Exists(dishID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrDishNotFound
	}

	eligible, err := s.Repo.UserHasOrderedDish(userID, dishID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		logrus.WithFields(logrus.Fields{"userId": userID, "dishId": dishID}).
			Warn("rating rejected: dish never ordered")
		return nil, ErrNotEligible
	}

	rating, err := s.Repo.FindByUserAndDish(userID, dishID)
	switch {
	case err == nil:
		rating.Score = score
		if err := s.Repo.Save(rating); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		rating = &entity.Rating{UserID: userID, DishID: dishID, Score: score}
		if err := s.Repo.Create(rating); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return &RatingView{DishID: rating.DishID, Score: rating.Score, RatedAt: rating.UpdatedAt}, nil
}

// DishRating returns the mean score and count. A dish with no ratings gets a
// present zero-valued aggregate, never an absence.
func (s *RatingService) DishRating(dishID uint) (*repository.DishAggregate, error) {
	exists, err := s.DishRepo.Exists(dishID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrDishNotFound
	}
	agg, err := s.Repo.Aggregate(dishID)
	if err != nil {
		return nil, err
	}
	return &agg, nil
}
