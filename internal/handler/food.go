package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/foodify/foodify-backend/internal/repository"
)

// FoodHandler serves the public menu browse endpoints.
type FoodHandler struct {
	Foods *repository.FoodRepo
}

func NewFoodHandler(f *repository.FoodRepo) *FoodHandler {
	return &FoodHandler{Foods: f}
}

// List handles GET /api/foods.
func (h *FoodHandler) List(c echo.Context) error {
	items, err := h.Foods.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": items})
}

// Popular handles GET /api/foods/popular.
func (h *FoodHandler) Popular(c echo.Context) error {
	items, err := h.Foods.Popular(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": items})
}

// ByRestaurant handles GET /api/foods/restaurant/:restaurantId.
func (h *FoodHandler) ByRestaurant(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("restaurantId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid restaurant id"})
	}
	items, err := h.Foods.ListByRestaurant(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": items})
}

// Get handles GET /api/foods/:id.
func (h *FoodHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid id"})
	}
	item, err := h.Foods.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "food not found"})
		}
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": item})
}
