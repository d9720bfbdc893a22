package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foodify/foodify-backend/internal/repository"
	"github.com/foodify/foodify-backend/internal/service"
)

// writeServiceError maps service-layer errors onto HTTP responses. The
// four expected kinds are safe to describe verbatim; anything else is an
// internal failure whose detail is logged but not exposed.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrEmailExists),
		errors.Is(err, repository.ErrUsernameExists):
		return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": err.Error()})
	case errors.Is(err, service.ErrInvalidResetToken),
		errors.Is(err, service.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	log.Printf("handler: %s %s failed: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Internal Server Error"})
}
