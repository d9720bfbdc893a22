package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/foodify/foodify-backend/internal/middleware"
	"github.com/foodify/foodify-backend/internal/service"
)

// AuthHandler bundles dependencies for the auth endpoints: registration,
// login, password reset and the self-service profile.
type AuthHandler struct {
	Creds *service.CredentialService
}

func NewAuthHandler(creds *service.CredentialService) *AuthHandler {
	return &AuthHandler{Creds: creds}
}

// ----- DTOs -----

type registerReq struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordReq struct {
	Email string `json:"email"`
}

type resetPasswordReq struct {
	NewPassword string `json:"new_password"`
}

type updateProfileReq struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
}

// Register handles POST /api/auth/register. Public registration always
// creates a regular user account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.FullName == "" || req.Username == "" || req.Phone == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "full_name, username, phone, email and password are required"})
	}

	profile, err := h.Creds.Register(c.Request().Context(), service.RegisterInput{
		FullName: req.FullName,
		Username: req.Username,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "User registered successfully",
		"user":    profile,
	})
}

// Login handles POST /api/auth/login and returns a 7-day bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "email and password are required"})
	}

	profile, tok, err := h.Creds.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Login successful",
		"token":   tok.Token,
		"expires": tok.Exp.Format(time.RFC3339),
		"user":    profile,
	})
}

// RequestPasswordReset handles POST /api/auth/request-password-reset. It
// emails a reset link valid for one hour.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req forgotPasswordReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "email is required"})
	}
	if err := h.Creds.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "A reset link has been sent to your email.",
	})
}

// ResetPassword handles POST /api/auth/reset-password/:token and rotates
// the password of the account the token is bound to.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	token := c.Param("token")
	var req resetPasswordReq
	if err := c.Bind(&req); err != nil || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "new_password is required"})
	}
	if _, err := h.Creds.ResetPassword(c.Request().Context(), token, req.NewPassword); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Password has been reset successfully.",
	})
}

// GetProfile handles GET /api/auth/profile (protected).
func (h *AuthHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
	}
	profile, err := h.Creds.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": profile})
}

// UpdateProfile handles PUT /api/auth/profile (protected). The identity
// always comes from the token, so a user can only edit themselves.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
	}
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	profile, err := h.Creds.UpdateProfile(c.Request().Context(), userID, service.ProfilePatch{
		FullName: req.FullName,
		Username: req.Username,
		Phone:    req.Phone,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Profile updated successfully",
		"data":    profile,
	})
}
