package services

import (
	"testing"

	"github.com/OmarZED/Delivery-System/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// placeOrder runs a one-item checkout so the user becomes rating-eligible
// for the dish.
func placeOrder(t *testing.T, svcB *BasketService, svcO *OrderService, userID, dishID uint) {
	t.Helper()
	_, err := svcB.AddItem(userID, dishID, 1)
	require.NoError(t, err)
	_, err = svcO.Create(userID, validOrderIn())
	require.NoError(t, err)
}

func TestRateScoreBounds(t *testing.T) {
	db := newTestDB(t)
	baskets := newBasketService(db)
	orders := newOrderService(db)
	ratings := newRatingService(db)
	dish := seedDish(t, db, "Dish A", 5.0, entity.CategoryWok, false)

	placeOrder(t, baskets, orders, 1, dish.ID)

	for _, score := range []int{0, 6, -1} {
		_, err := ratings.Rate(1, dish.ID, score)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
	for _, score := range []int{1, 5} {
		_, err := ratings.Rate(1, dish.ID, score)
		assert.NoError(t, err)
	}
}

func TestCanRateRequiresOrder(t *testing.T) {
	db := newTestDB(t)
	baskets := newBasketService(db)
	orders := newOrderService(db)
	ratings := newRatingService(db)
	dish := seedDish(t, db, "Dish A", 5.0, entity.CategoryWok, false)

	can, err := ratings.CanRate(1, dish.ID)
	require.NoError(t, err)
	assert.False(t, can)

	placeOrder(t, baskets, orders, 1, dish.ID)

	can, err = ratings.CanRate(1, dish.ID)
	require.NoError(t, err)
	assert.True(t, can)

	// another user is still not eligible
	can, err = ratings.CanRate(2, dish.ID)
	require.NoError(t, err)
	assert.False(t, can)
}

func TestRateWithoutOrderIsForbidden(t *testing.T) {
	db := newTestDB(t)
	ratings := newRatingService(db)
	dish := seedDish(t, db, "Dish A", 5.0, entity.CategoryWok, false)

	_, err := ratings.Rate(1, dish.ID, 4)
	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestRateUnknownDish(t *testing.T) {
	db := newTestDB(t)
	ratings := newRatingService(db)

	_, err := ratings.Rate(1, 777, 4)
	assert.ErrorIs(t, err, ErrDishNotFound)
}

func TestRateTwiceUpdatesInPlace(t *testing.T) {
	db := newTestDB(t)
	baskets := newBasketService(db)
	orders := newOrderService(db)
	ratings := newRatingService(db)
	dish := seedDish(t, db, "Dish A", 5.0, entity.CategoryWok, false)

	placeOrder(t, baskets, orders, 1, dish.ID)

	_, err := ratings.Rate(1, dish.ID, 2)
	require.NoError(t, err)
	_, err = ratings.Rate(1, dish.ID, 5)
	require.NoError(t, err)

	var cnt int64
	require.NoError(t, db.Model(&entity.Rating{}).Where("dish_id = ?", dish.ID).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)

	agg, err := ratings.DishRating(dish.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, agg.AverageRating, 1e-9)
	assert.EqualValues(t, 1, agg.RatingsCount)
}

func TestDishRatingAveragesAcrossUsers(t *testing.T) {
	db := newTestDB(t)
	baskets := newBasketService(db)
	orders := newOrderService(db)
	ratings := newRatingService(db)
	dish := seedDish(t, db, "Dish A", 5.0, entity.CategoryWok, false)

	placeOrder(t, baskets, orders, 1, dish.ID)
	placeOrder(t, baskets, orders, 2, dish.ID)

	_, err := ratings.Rate(1, dish.ID, 2)
	require.NoError(t, err)
	_, err = ratings.Rate(2, dish.ID, 4)
	require.NoError(t, err)

	agg, err := ratings.DishRating(dish.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, agg.AverageRating, 1e-9)
	assert.EqualValues(t, 2, agg.RatingsCount)
}

func TestDishRatingZeroWhenUnrated(t *testing.T) {
	db := newTestDB(t)
	ratings := newRatingService(db)
	dish := seedDish(t, db, "Dish A", 5.0, entity.CategoryWok, false)

	agg, err := ratings.DishRating(dish.ID)
	require.NoError(t, err)
	assert.Zero(t, agg.AverageRating)
	assert.Zero(t, agg.RatingsCount)

	_, err = ratings.DishRating(999)
	assert.ErrorIs(t, err, ErrDishNotFound)
}
