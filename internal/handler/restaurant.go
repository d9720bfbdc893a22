package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/foodify/foodify-backend/internal/repository"
)

// RestaurantHandler serves the public restaurant browse endpoints. No
// authentication is applied; the data is read-only.
type RestaurantHandler struct {
	Restaurants *repository.RestaurantRepo
}

func NewRestaurantHandler(r *repository.RestaurantRepo) *RestaurantHandler {
	return &RestaurantHandler{Restaurants: r}
}

// List handles GET /api/restaurants.
func (h *RestaurantHandler) List(c echo.Context) error {
	items, err := h.Restaurants.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": items})
}

// Search handles GET /api/restaurants/search?q=.
func (h *RestaurantHandler) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "q is required"})
	}
	items, err := h.Restaurants.Search(c.Request().Context(), q)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": items})
}

// Get handles GET /api/restaurants/:id.
func (h *RestaurantHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid id"})
	}
	item, err := h.Restaurants.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "restaurant not found"})
		}
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": item})
}
