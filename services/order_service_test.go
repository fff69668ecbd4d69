package services

import (
	"testing"
	"time"

	"github.com/OmarZED/Delivery-System/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderIn() *CreateOrderIn {
	return &CreateOrderIn{
		DeliveryTime: time.Now().Add(2 * time.Hour),
		Address:      "1 Main St",
	}
}

func TestCreateOrderTotalsAndClearsBasket(t *testing.T) {
	db := newTestDB(t)
	baskets := newBasketService(db)
	orders := newOrderService(db)

	a := seedDish(t, db, "Dish A", 5.0, entity.CategoryWok, false)
	b := seedDish(t, db, "Dish B", 3.0, entity.CategorySoup, true)

	_, err := baskets.AddItem(1, a.ID, 2)
	require.NoError(t, err)
	_, err = baskets.AddItem(1, b.ID, 1)
	require.NoError(t, err)

	order, err := orders.Create(1, validOrderIn())
	require.NoError(t, err)

	assert.InDelta(t, 13.0, order.Price, 1e-9)
	assert.Equal(t, entity.OrderInProcess, order.Status)
	assert.Len(t, order.Items, 2)

	basket, err := baskets.Get(1)
	require.NoError(t, err)
	assert.Empty(t, basket.Items)
}

func TestCreateOrderEmptyBasketFailsWithoutWrites(t *testing.T) {
	db := newTestDB(t)
	baskets := newBasketService(db)
	orders := newOrderService(db)
	dish := seedDish(t, db, "Dish A", 5.0, entity.CategoryWok, false)

	// never had a basket
	_, err := orders.Create(1, validOrderIn())
	assert.ErrorIs(t, err, ErrBasketEmpty)

	// basket exists but is empty
	_, err = baskets.AddItem(2, dish.ID, 1)
	require.NoError(t, err)
	_, err = baskets.Clear(2)
	require.NoError(t, err)
	_, err = orders.Create(2, validOrderIn())
	assert.ErrorIs(t, err, ErrBasketEmpty)

	var cnt int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestCreateOrderValidatesInput(t *testing.T) {
	db := newTestDB(t)
	baskets := newBasketService(db)
	orders := newOrderService(db)
	dish := seedDish(t, db, "Dish A", 5.0, entity.CategoryWok, false)

	_, err := baskets.AddItem(1, dish.ID, 1)
	require.NoError(t, err)

	in := validOrderIn()
	in.Address = ""
	_, err = orders.Create(1, in)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	in = validOrderIn()
	in.DeliveryTime = time.Now().Add(-time.Hour)
	_, err = orders.Create(1, in)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// the basket survived both rejections
	basket, err := baskets.Get(1)
	require.NoError(t, err)
	assert.Len(t, basket.Items, 1)
}

func TestOrderItemsKeepBasketSnapshot(t *testing.T) {
	db := newTestDB(t)
	baskets := newBasketService(db)
	orders := newOrderService(db)
	dish := seedDish(t, db, "Dish A", 5.0, entity.CategoryWok, false)

	_, err := baskets.AddItem(1, dish.ID, 2)
	require.NoError(t, err)

	// price change between add and any later read of the order
	require.NoError(t, db.Model(&entity.Dish{}).Where("id = ?", dish.ID).Update("price", 50.0).Error)

	order, err := orders.Create(1, validOrderIn())
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.InDelta(t, 5.0, order.Items[0].Price, 1e-9)
	assert.InDelta(t, 10.0, order.Price, 1e-9)
}

func TestOrderDetailIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	baskets := newBasketService(db)
	orders := newOrderService(db)
	dish := seedDish(t, db, "Dish A", 5.0, entity.CategoryWok, false)

	_, err := baskets.AddItem(1, dish.ID, 1)
	require.NoError(t, err)
	order, err := orders.Create(1, validOrderIn())
	require.NoError(t, err)

	_, err = orders.Detail(2, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	got, err := orders.Detail(1, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestListForUserReturnsOwnOrdersOnly(t *testing.T) {
	db := newTestDB(t)
	baskets := newBasketService(db)
	orders := newOrderService(db)
	dish := seedDish(t, db, "Dish A", 5.0, entity.CategoryWok, false)

	for _, uid := range []uint{1, 1, 2} {
		_, err := baskets.AddItem(uid, dish.ID, 1)
		require.NoError(t, err)
		_, err = orders.Create(uid, validOrderIn())
		require.NoError(t, err)
	}

	list, err := orders.ListForUser(1)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = orders.ListForUser(3)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestConfirmDelivery(t *testing.T) {
	db := newTestDB(t)
	baskets := newBasketService(db)
	orders := newOrderService(db)
	dish := seedDish(t, db, "Dish A", 5.0, entity.CategoryWok, false)

	_, err := baskets.AddItem(1, dish.ID, 1)
	require.NoError(t, err)
	order, err := orders.Create(1, validOrderIn())
	require.NoError(t, err)

	// foreign order looks missing
	err = orders.ConfirmDelivery(2, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	require.NoError(t, orders.ConfirmDelivery(1, order.ID))

	got, err := orders.Detail(1, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderDelivered, got.Status)

	// transition is unconditional, repeating it succeeds
	assert.NoError(t, orders.ConfirmDelivery(1, order.ID))
}
