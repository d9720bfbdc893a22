package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/foodify/foodify-backend/internal/service"
)

// AdminUserHandler exposes the admin user panel. Every route is mounted
// behind JWTAuth + RequireRole("admin").
type AdminUserHandler struct {
	Svc *service.AdminUserService
}

func NewAdminUserHandler(svc *service.AdminUserService) *AdminUserHandler {
	return &AdminUserHandler{Svc: svc}
}

type adminUserReq struct {
	FullName     string `json:"full_name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	ProfileImage string `json:"profile_image"`
}

// Create handles POST /api/admin/users.
func (h *AdminUserHandler) Create(c echo.Context) error {
	var req adminUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	if req.FullName == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "full_name, username, email and password are required"})
	}
	profile, err := h.Svc.Create(c.Request().Context(), service.AdminCreateInput{
		FullName:     req.FullName,
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     req.Password,
		Role:         req.Role,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "message": "User Created", "data": profile})
}

// List handles GET /api/admin/users?page=&size=&search=.
func (h *AdminUserHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	search := c.QueryParam("search")

	profiles, pagination, err := h.Svc.List(c.Request().Context(), page, size, search)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"message":    "All Users Retrieved",
		"data":       profiles,
		"pagination": pagination,
	})
}

// Get handles GET /api/admin/users/:id.
func (h *AdminUserHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid id"})
	}
	profile, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Single User Retrieved", "data": profile})
}

// Update handles PUT /api/admin/users/:id.
func (h *AdminUserHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid id"})
	}
	var req adminUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	profile, err := h.Svc.Update(c.Request().Context(), id, service.AdminUpdateInput{
		FullName:     req.FullName,
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     req.Password,
		Role:         req.Role,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "User Updated", "data": profile})
}

// Delete handles DELETE /api/admin/users/:id.
func (h *AdminUserHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "User Deleted"})
}
