package main // Entry point package

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/foodify/foodify-backend/internal/auth"
	"github.com/foodify/foodify-backend/internal/config"
	"github.com/foodify/foodify-backend/internal/database"
	"github.com/foodify/foodify-backend/internal/email"
	"github.com/foodify/foodify-backend/internal/handler"
	"github.com/foodify/foodify-backend/internal/queue"
	"github.com/foodify/foodify-backend/internal/repository"
	"github.com/foodify/foodify-backend/internal/router"
	"github.com/foodify/foodify-backend/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	restaurants := repository.NewRestaurantRepo(db)
	foods := repository.NewFoodRepo(db)
	orders := repository.NewOrderRepo(db)

	mailer := email.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	otpLedger := auth.NewOtpLedger(time.Duration(cfg.OtpTTLMin) * time.Minute)

	creds := service.NewCredentialService(cfg, users, mailer, otpLedger)
	adminUsers := service.NewAdminUserService(users, cfg.BcryptCost)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting disabled")
	}

	// Background worker that writes payment audit lines from the broker.
	go func() {
		if err := queue.StartPaymentConsumer(); err != nil {
			log.Printf("payment consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, config.LoadRateLimitConfig(), rdb, router.Handlers{
		Auth:        handler.NewAuthHandler(creds),
		Payment:     handler.NewPaymentHandler(creds, orders),
		AdminUsers:  handler.NewAdminUserHandler(adminUsers),
		Restaurants: handler.NewRestaurantHandler(restaurants),
		Foods:       handler.NewFoodHandler(foods),
		Orders:      handler.NewOrderHandler(orders, foods),
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
