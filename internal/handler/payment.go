package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/foodify/foodify-backend/internal/auth"
	"github.com/foodify/foodify-backend/internal/middleware"
	"github.com/foodify/foodify-backend/internal/model"
	"github.com/foodify/foodify-backend/internal/queue"
	"github.com/foodify/foodify-backend/internal/service"
)

// PaymentHandler gates order payment behind an emailed one-time code. It
// never moves money itself; a verified code confirms the pending order and
// emits a payment.verified event for downstream consumers.
type PaymentHandler struct {
	Creds  *service.CredentialService
	Orders OrderStore
}

func NewPaymentHandler(creds *service.CredentialService, orders OrderStore) *PaymentHandler {
	return &PaymentHandler{Creds: creds, Orders: orders}
}

type sendOTPReq struct {
	AmountCents    uint32 `json:"amount_cents"`
	RestaurantName string `json:"restaurant_name"`
}

type verifyOTPReq struct {
	OTP     string `json:"otp"`
	OrderID uint64 `json:"order_id"`
}

// SendOTP handles POST /api/payment/khalti/send-otp (protected). A new
// request overwrites any code still pending for the user.
func (h *PaymentHandler) SendOTP(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
	}
	var req sendOTPReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	if req.AmountCents == 0 || req.RestaurantName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "amount_cents and restaurant_name are required"})
	}

	if err := h.Creds.RequestPaymentOTP(c.Request().Context(), userID, req.AmountCents, req.RestaurantName); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "OTP sent to your registered email",
	})
}

// VerifyOTP handles POST /api/payment/khalti/verify-otp (protected). On a
// match the referenced order (when it belongs to the caller) moves to
// CONFIRMED and a payment.verified event is published. All failure modes
// share the 400 status; the message says what to do next, not which
// internal state was hit.
func (h *PaymentHandler) VerifyOTP(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
	}
	var req verifyOTPReq
	if err := c.Bind(&req); err != nil || req.OTP == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "otp is required"})
	}

	// Resolve the order before touching the code: a mistyped order_id must
	// not burn the single-use OTP.
	var order model.Order
	if req.OrderID != 0 {
		var err error
		order, err = h.Orders.GetByID(c.Request().Context(), req.OrderID)
		switch {
		case errors.Is(err, sql.ErrNoRows) || (err == nil && order.UserID != userID):
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "order not found"})
		case err != nil:
			return writeServiceError(c, err)
		}
	}

	switch h.Creds.ConfirmPaymentOTP(userID, req.OTP) {
	case auth.OtpNoPending:
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "No OTP found. Please request a new one."})
	case auth.OtpExpired:
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "OTP has expired. Please request a new one."})
	case auth.OtpMismatch:
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid OTP. Please try again."})
	}

	event := queue.PaymentVerifiedEvent{
		UserID:     userID,
		VerifiedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if req.OrderID != 0 {
		if err := h.Orders.UpdateStatus(c.Request().Context(), order.ID, model.OrderConfirmed); err != nil {
			return writeServiceError(c, err)
		}
		event.OrderID = order.ID
		event.TotalAmountCents = order.TotalAmountCents
	}

	// Broker outages must not fail an already-verified payment.
	_ = queue.PublishPaymentVerified(c.Request().Context(), event)

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Payment verified successfully",
	})
}
