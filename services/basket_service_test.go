package services

import (
	"testing"

	"github.com/OmarZED/Delivery-System/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemMergesSameDish(t *testing.T) {
	db := newTestDB(t)
	svc := newBasketService(db)
	dish := seedDish(t, db, "Margherita", 9.5, entity.CategoryPizza, true)

	_, err := svc.AddItem(1, dish.ID, 2)
	require.NoError(t, err)
	basket, err := svc.AddItem(1, dish.ID, 3)
	require.NoError(t, err)

	require.Len(t, basket.Items, 1)
	assert.Equal(t, 5, basket.Items[0].Amount)
	assert.InDelta(t, 9.5*5, basket.TotalPrice, 1e-9)
}

func TestAddItemSnapshotsDishFields(t *testing.T) {
	db := newTestDB(t)
	svc := newBasketService(db)
	dish := seedDish(t, db, "Tom Yum", 8.0, entity.CategorySoup, false)

	basket, err := svc.AddItem(1, dish.ID, 1)
	require.NoError(t, err)

	// catalog change after add must not leak into the open basket
	require.NoError(t, db.Model(&entity.Dish{}).Where("id = ?", dish.ID).Update("price", 99.0).Error)

	basket, err = svc.Get(1)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, basket.Items[0].Price, 1e-9)
	assert.Equal(t, "Tom Yum", basket.Items[0].Name)
}

func TestAddItemRejectsNonPositiveAmount(t *testing.T) {
	db := newTestDB(t)
	svc := newBasketService(db)
	dish := seedDish(t, db, "Cola", 2.0, entity.CategoryDrink, true)

	for _, amount := range []int{0, -1} {
		_, err := svc.AddItem(1, dish.ID, amount)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}

	// basket unchanged: never created
	_, err := svc.Get(1)
	assert.ErrorIs(t, err, ErrBasketNotFound)
}

func TestAddItemUnknownDish(t *testing.T) {
	db := newTestDB(t)
	svc := newBasketService(db)

	_, err := svc.AddItem(1, 12345, 1)
	assert.ErrorIs(t, err, ErrDishNotFound)
}

func TestGetBasketNeverCreated(t *testing.T) {
	db := newTestDB(t)
	svc := newBasketService(db)

	_, err := svc.Get(7)
	assert.ErrorIs(t, err, ErrBasketNotFound)
}

func TestDecrementRemovesItemAtOne(t *testing.T) {
	db := newTestDB(t)
	svc := newBasketService(db)
	dish := seedDish(t, db, "Miso Soup", 5.5, entity.CategorySoup, true)

	_, err := svc.AddItem(1, dish.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.DecrementItem(1, dish.ID))

	basket, err := svc.Get(1)
	require.NoError(t, err)
	assert.Empty(t, basket.Items)
}

func TestDecrementKeepsItemAboveOne(t *testing.T) {
	db := newTestDB(t)
	svc := newBasketService(db)
	dish := seedDish(t, db, "Udon Wok", 10.0, entity.CategoryWok, true)

	_, err := svc.AddItem(1, dish.ID, 3)
	require.NoError(t, err)

	require.NoError(t, svc.DecrementItem(1, dish.ID))

	basket, err := svc.Get(1)
	require.NoError(t, err)
	require.Len(t, basket.Items, 1)
	assert.Equal(t, 2, basket.Items[0].Amount)
}

func TestRemoveMissingItemIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := newBasketService(db)
	dish := seedDish(t, db, "Tiramisu", 6.0, entity.CategoryDessert, true)

	_, err := svc.AddItem(1, dish.ID, 1)
	require.NoError(t, err)

	assert.NoError(t, svc.RemoveItem(1, 999))
	assert.NoError(t, svc.DecrementItem(1, 999))
	// no basket at all is also a no-op
	assert.NoError(t, svc.RemoveItem(42, dish.ID))

	basket, err := svc.Get(1)
	require.NoError(t, err)
	assert.Len(t, basket.Items, 1)
}

func TestRemoveDeletesRegardlessOfAmount(t *testing.T) {
	db := newTestDB(t)
	svc := newBasketService(db)
	dish := seedDish(t, db, "Pepperoni", 11.0, entity.CategoryPizza, false)

	_, err := svc.AddItem(1, dish.ID, 4)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(1, dish.ID))

	basket, err := svc.Get(1)
	require.NoError(t, err)
	assert.Empty(t, basket.Items)
}

func TestClearIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newBasketService(db)
	dish := seedDish(t, db, "Green Tea", 2.5, entity.CategoryDrink, true)

	existed, err := svc.Clear(1)
	require.NoError(t, err)
	assert.False(t, existed)

	_, err = svc.AddItem(1, dish.ID, 2)
	require.NoError(t, err)

	existed, err = svc.Clear(1)
	require.NoError(t, err)
	assert.True(t, existed)

	basket, err := svc.Get(1)
	require.NoError(t, err)
	assert.Empty(t, basket.Items)

	// clearing an already empty basket still succeeds
	existed, err = svc.Clear(1)
	require.NoError(t, err)
	assert.True(t, existed)
}
