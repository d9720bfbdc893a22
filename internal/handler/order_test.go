package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodify/foodify-backend/internal/middleware"
	"github.com/foodify/foodify-backend/internal/model"
)

type fakeFoodStore struct{ foods map[uint64]model.Food }

func (f *fakeFoodStore) GetByID(_ context.Context, id uint64) (model.Food, error) {
	food, ok := f.foods[id]
	if !ok {
		return model.Food{}, sql.ErrNoRows
	}
	return food, nil
}

type fakeOrderStore struct {
	nextID uint64
	orders map[uint64]model.Order
	items  map[uint64][]model.OrderItem
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		nextID: 1,
		orders: map[uint64]model.Order{},
		items:  map[uint64][]model.OrderItem{},
	}
}

func (f *fakeOrderStore) Create(_ context.Context, o *model.Order, items []model.OrderItem) error {
	o.ID = f.nextID
	f.nextID++
	f.orders[o.ID] = *o
	f.items[o.ID] = items
	return nil
}

func (f *fakeOrderStore) GetByID(_ context.Context, id uint64) (model.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return model.Order{}, sql.ErrNoRows
	}
	return o, nil
}

func (f *fakeOrderStore) ListByUser(_ context.Context, userID uint64) ([]model.Order, error) {
	out := []model.Order{}
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) Items(_ context.Context, orderID uint64) ([]model.OrderItem, error) {
	return f.items[orderID], nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, id uint64, status string) error {
	o, ok := f.orders[id]
	if !ok {
		return sql.ErrNoRows
	}
	o.Status = status
	f.orders[id] = o
	return nil
}

// postJSON drives a handler directly with an authenticated JSON request.
func postJSON(t *testing.T, h echo.HandlerFunc, body string, userID uint64) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, userID)
	require.NoError(t, h(c))
	return rec
}

func TestOrderTotalCents(t *testing.T) {
	total, err := orderTotalCents([]model.OrderItem{
		{PriceCents: 1500, Quantity: 2},
		{PriceCents: 250, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(3250), total)
}

func TestOrderTotalCents_RejectsOverflow(t *testing.T) {
	// 45000 * 95445 wraps a 32-bit product; the 64-bit sum must catch it.
	_, err := orderTotalCents([]model.OrderItem{
		{PriceCents: 45000, Quantity: 95445},
	})
	assert.Error(t, err)
}

func TestCreateOrder_RejectsExcessiveQuantity(t *testing.T) {
	foods := &fakeFoodStore{foods: map[uint64]model.Food{
		1: {ID: 1, RestaurantID: 5, PriceCents: 45000},
	}}
	orders := newFakeOrderStore()
	h := NewOrderHandler(orders, foods)

	rec := postJSON(t, h.Create, `{"restaurant_id":5,"items":[{"food_id":1,"quantity":95445}]}`, 1)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, orders.orders)
}

func TestCreateOrder_PricesFromMenu(t *testing.T) {
	foods := &fakeFoodStore{foods: map[uint64]model.Food{
		1: {ID: 1, RestaurantID: 5, PriceCents: 45000},
		2: {ID: 2, RestaurantID: 5, PriceCents: 250},
	}}
	orders := newFakeOrderStore()
	h := NewOrderHandler(orders, foods)

	rec := postJSON(t, h.Create, `{"restaurant_id":5,"items":[{"food_id":1,"quantity":2},{"food_id":2,"quantity":4}]}`, 1)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, orders.orders, 1)
	stored := orders.orders[1]
	assert.Equal(t, model.OrderPending, stored.Status)
	assert.Equal(t, uint32(91000), stored.TotalAmountCents)
	assert.Equal(t, uint64(1), stored.UserID)
}

func TestCreateOrder_RejectsForeignFood(t *testing.T) {
	foods := &fakeFoodStore{foods: map[uint64]model.Food{
		1: {ID: 1, RestaurantID: 9, PriceCents: 45000},
	}}
	orders := newFakeOrderStore()
	h := NewOrderHandler(orders, foods)

	rec := postJSON(t, h.Create, `{"restaurant_id":5,"items":[{"food_id":1,"quantity":1}]}`, 1)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, orders.orders)
}
