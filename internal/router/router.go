// Package router wires the HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/foodify/foodify-backend/internal/config"
	"github.com/foodify/foodify-backend/internal/handler"
	"github.com/foodify/foodify-backend/internal/middleware"
	"github.com/foodify/foodify-backend/internal/model"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth        *handler.AuthHandler
	Payment     *handler.PaymentHandler
	AdminUsers  *handler.AdminUserHandler
	Restaurants *handler.RestaurantHandler
	Foods       *handler.FoodHandler
	Orders      *handler.OrderHandler
}

// Register mounts all routes on the Echo instance. The rate limiter is
// applied to the credential-sensitive endpoints only; rdb may be nil, in
// which case limiting is disabled.
func Register(e *echo.Echo, cfg config.Config, rlCfg config.RateLimitConfig, rdb *redis.Client, h Handlers) {
	e.GET("/", handler.Health)
	e.GET("/healthz", handler.Health)

	limited := middleware.NewTokenBucket(rlCfg, rdb)
	authed := middleware.JWTAuth(cfg.JWTSecret)

	// Public auth endpoints. Login and the reset-request are throttled
	// since both take a guessable identifier.
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", h.Auth.Register)
	authGroup.POST("/login", h.Auth.Login, limited)
	authGroup.POST("/request-password-reset", h.Auth.RequestPasswordReset, limited)
	authGroup.POST("/reset-password/:token", h.Auth.ResetPassword, limited)
	authGroup.GET("/profile", h.Auth.GetProfile, authed)
	authGroup.PUT("/profile", h.Auth.UpdateProfile, authed)

	// Payment OTP flow, authenticated and throttled.
	payment := e.Group("/api/payment/khalti", authed, limited)
	payment.POST("/send-otp", h.Payment.SendOTP)
	payment.POST("/verify-otp", h.Payment.VerifyOTP)

	// Admin user panel.
	admin := e.Group("/api/admin/users", authed, middleware.RequireRole(model.RoleAdmin))
	admin.POST("", h.AdminUsers.Create)
	admin.GET("", h.AdminUsers.List)
	admin.GET("/:id", h.AdminUsers.Get)
	admin.PUT("/:id", h.AdminUsers.Update)
	admin.DELETE("/:id", h.AdminUsers.Delete)

	// Public browse endpoints.
	restaurants := e.Group("/api/restaurants")
	restaurants.GET("", h.Restaurants.List)
	restaurants.GET("/search", h.Restaurants.Search)
	restaurants.GET("/:id", h.Restaurants.Get)

	foods := e.Group("/api/foods")
	foods.GET("", h.Foods.List)
	foods.GET("/popular", h.Foods.Popular)
	foods.GET("/restaurant/:restaurantId", h.Foods.ByRestaurant)
	foods.GET("/:id", h.Foods.Get)

	// Orders require a session.
	orders := e.Group("/api/orders", authed)
	orders.POST("", h.Orders.Create)
	orders.GET("", h.Orders.List)
	orders.GET("/:id", h.Orders.Get)
}
