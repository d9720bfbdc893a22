package handler

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/foodify/foodify-backend/internal/middleware"
	"github.com/foodify/foodify-backend/internal/model"
)

// OrderStore is the order persistence surface the handlers need.
// *repository.OrderRepo implements it; tests substitute in-memory fakes.
type OrderStore interface {
	Create(ctx context.Context, o *model.Order, items []model.OrderItem) error
	GetByID(ctx context.Context, id uint64) (model.Order, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Order, error)
	Items(ctx context.Context, orderID uint64) ([]model.OrderItem, error)
	UpdateStatus(ctx context.Context, id uint64, status string) error
}

// FoodStore is the menu lookup the order flow needs for pricing.
type FoodStore interface {
	GetByID(ctx context.Context, id uint64) (model.Food, error)
}

// maxItemQuantity bounds a single line item. Anything larger is a typo or
// an attempt to wrap the order total.
const maxItemQuantity = 100

// OrderHandler serves the authenticated order endpoints. Orders are
// created PENDING; the payment flow moves them to CONFIRMED.
type OrderHandler struct {
	Orders OrderStore
	Foods  FoodStore
}

func NewOrderHandler(orders OrderStore, foods FoodStore) *OrderHandler {
	return &OrderHandler{Orders: orders, Foods: foods}
}

type orderItemReq struct {
	FoodID   uint64 `json:"food_id"`
	Quantity uint32 `json:"quantity"`
}

type createOrderReq struct {
	RestaurantID uint64         `json:"restaurant_id"`
	Items        []orderItemReq `json:"items"`
}

// Create handles POST /api/orders. Unit prices are captured from the menu
// at order time; the client-side totals are not trusted.
func (h *OrderHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
	}
	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	if req.RestaurantID == 0 || len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "restaurant_id and items are required"})
	}

	ctx := c.Request().Context()
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity == 0 || it.Quantity > maxItemQuantity {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "item quantity must be between 1 and 100"})
		}
		food, err := h.Foods.GetByID(ctx, it.FoodID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "unknown food item"})
			}
			return writeServiceError(c, err)
		}
		if food.RestaurantID != req.RestaurantID {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "food item does not belong to the restaurant"})
		}
		items = append(items, model.OrderItem{
			FoodID:     food.ID,
			Quantity:   it.Quantity,
			PriceCents: food.PriceCents,
		})
	}

	total, err := orderTotalCents(items)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "order total out of range"})
	}

	order := model.Order{
		UserID:           userID,
		RestaurantID:     req.RestaurantID,
		Status:           model.OrderPending,
		TotalAmountCents: total,
	}
	if err := h.Orders.Create(ctx, &order, items); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{
		"id":                 order.ID,
		"restaurant_id":      order.RestaurantID,
		"status":             order.Status,
		"total_amount_cents": order.TotalAmountCents,
	}})
}

// List handles GET /api/orders and returns the caller's orders.
func (h *OrderHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
	}
	orders, err := h.Orders.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": orders})
}

// Get handles GET /api/orders/:id. Only the owner (or an admin) may read
// an order.
func (h *OrderHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid id"})
	}

	ctx := c.Request().Context()
	order, err := h.Orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "order not found"})
		}
		return writeServiceError(c, err)
	}
	role, _ := c.Get(middleware.CtxRole).(string)
	if order.UserID != userID && role != model.RoleAdmin {
		// Hide existence from other users.
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "order not found"})
	}

	items, err := h.Orders.Items(ctx, order.ID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{
		"order": order,
		"items": items,
	}})
}

// orderTotalCents sums the line totals in 64 bits. The storage column is
// 32-bit, so a total beyond it is rejected rather than silently wrapped.
func orderTotalCents(items []model.OrderItem) (uint32, error) {
	var total uint64
	for _, it := range items {
		total += uint64(it.PriceCents) * uint64(it.Quantity)
	}
	if total > math.MaxUint32 {
		return 0, errors.New("order total exceeds supported range")
	}
	return uint32(total), nil
}
