// Package service implements the business logic behind the HTTP handlers:
// account registration and login, password reset, the payment OTP flow and
// the admin user panel. It talks to persistence through the UserStore
// interface and to the outside world through email.Mailer, so handlers
// stay thin and the logic is testable without a database or SMTP server.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/foodify/foodify-backend/internal/auth"
	"github.com/foodify/foodify-backend/internal/config"
	"github.com/foodify/foodify-backend/internal/email"
	"github.com/foodify/foodify-backend/internal/model"
	"github.com/foodify/foodify-backend/internal/repository"
)

// Sentinel errors returned by the credential and admin services. Handlers
// map these to HTTP status codes; anything else is an internal error.
var (
	// ErrNotFound: no account matches the given identifier.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidCredentials: login failed. Deliberately identical whether
	// the email is unknown or the password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidResetToken: malformed, forged or expired reset token.
	ErrInvalidResetToken = errors.New("invalid or expired token")
	// ErrInvalidInput: a field failed basic validation.
	ErrInvalidInput = errors.New("invalid input")
)

// UserStore is the persistence surface the services need. *repository.UserRepo
// implements it; tests substitute an in-memory fake. Lookups report a
// missing row as sql.ErrNoRows.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, page, size int, search string) ([]model.User, int, error)
}

// Profile is the safe projection of a user returned to clients. It never
// carries the password hash.
type Profile struct {
	ID           uint64    `json:"id"`
	FullName     string    `json:"full_name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toProfile(u model.User) Profile {
	return Profile{
		ID:           u.ID,
		FullName:     u.FullName,
		Username:     u.Username,
		Email:        u.Email,
		Phone:        u.Phone,
		Role:         u.Role,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
	}
}

// CredentialService composes the credential primitives (bcrypt hashing,
// signed tokens, the OTP ledger) for the auth, password-reset and payment
// endpoints.
type CredentialService struct {
	users  UserStore
	mailer email.Mailer
	otp    *auth.OtpLedger

	secret         string
	sessionTTLDays int
	resetTTLMin    int
	bcryptCost     int
	clientURL      string
}

func NewCredentialService(cfg config.Config, users UserStore, mailer email.Mailer, otp *auth.OtpLedger) *CredentialService {
	return &CredentialService{
		users:          users,
		mailer:         mailer,
		otp:            otp,
		secret:         cfg.JWTSecret,
		sessionTTLDays: cfg.SessionTTLDays,
		resetTTLMin:    cfg.ResetTTLMin,
		bcryptCost:     cfg.BcryptCost,
		clientURL:      strings.TrimRight(cfg.ClientURL, "/"),
	}
}

// RegisterInput carries the public registration fields. Role is not
// settable here; every public registration produces a regular user.
type RegisterInput struct {
	FullName string
	Username string
	Email    string
	Phone    string
	Password string
}

// Register creates a new account after checking that neither the email nor
// the username is already bound to one. Conflicts surface as
// repository.ErrEmailExists / repository.ErrUsernameExists.
func (s *CredentialService) Register(ctx context.Context, in RegisterInput) (Profile, error) {
	if len(in.Password) < 6 {
		return Profile{}, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}

	u := model.User{
		FullName: strings.TrimSpace(in.FullName),
		Username: strings.TrimSpace(in.Username),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:    strings.TrimSpace(in.Phone),
		Role:     model.RoleUser,
	}
	if err := checkUnique(ctx, s.users, u.Email, u.Username, 0); err != nil {
		return Profile{}, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return Profile{}, fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash

	// The store re-checks uniqueness via its unique indexes, so a race
	// between the lookups above and the insert still ends in a conflict
	// error rather than a duplicate row.
	if err := s.users.Create(ctx, &u); err != nil {
		return Profile{}, err
	}
	return toProfile(u), nil
}

// Login resolves the account by email and verifies the password. Both an
// unknown email and a wrong password produce ErrInvalidCredentials, so a
// caller cannot probe which addresses are registered. On success it mints
// a session token.
func (s *CredentialService) Login(ctx context.Context, emailAddr, password string) (Profile, auth.SessionToken, error) {
	u, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, auth.SessionToken{}, ErrInvalidCredentials
		}
		return Profile{}, auth.SessionToken{}, fmt.Errorf("load user: %w", err)
	}
	if !auth.VerifyPassword(u.PasswordHash, password) {
		return Profile{}, auth.SessionToken{}, ErrInvalidCredentials
	}

	tok, err := auth.NewSessionToken(s.secret, u.ID, u.Email, u.Role, s.sessionTTLDays)
	if err != nil {
		return Profile{}, auth.SessionToken{}, fmt.Errorf("issue session token: %w", err)
	}
	return toProfile(u), tok, nil
}

// GetProfile returns the safe projection of one account.
func (s *CredentialService) GetProfile(ctx context.Context, userID uint64) (Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("load user: %w", err)
	}
	return toProfile(u), nil
}

// ProfilePatch carries the self-service profile fields. Empty strings mean
// "leave unchanged".
type ProfilePatch struct {
	FullName string
	Username string
	Phone    string
}

// UpdateProfile lets a user edit their own display fields. A username
// change is checked against other accounts first.
func (s *CredentialService) UpdateProfile(ctx context.Context, userID uint64, patch ProfilePatch) (Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("load user: %w", err)
	}
	if v := strings.TrimSpace(patch.FullName); v != "" {
		u.FullName = v
	}
	if v := strings.TrimSpace(patch.Username); v != "" && v != u.Username {
		if err := checkUnique(ctx, s.users, "", v, u.ID); err != nil {
			return Profile{}, err
		}
		u.Username = v
	}
	if v := strings.TrimSpace(patch.Phone); v != "" {
		u.Phone = v
	}
	if err := s.users.Update(ctx, &u); err != nil {
		return Profile{}, err
	}
	return toProfile(u), nil
}

// RequestPasswordReset issues a signed, short-lived reset token bound to
// the account matching the email and sends it as a link. An unknown email
// reports ErrNotFound to the caller; responding uniformly regardless of
// whether the address exists would hide less, but this mirrors the current
// product behavior.
func (s *CredentialService) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	u, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("load user: %w", err)
	}

	tok, err := auth.NewResetToken(s.secret, u.ID, s.resetTTLMin)
	if err != nil {
		return fmt.Errorf("issue reset token: %w", err)
	}

	name := u.FullName
	if name == "" {
		name = u.Username
	}
	link := fmt.Sprintf("%s/reset-password?token=%s", s.clientURL, tok)
	if err := s.mailer.Send(u.Email, "Password Reset - Foodify", email.ResetPasswordHTML(name, link)); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}

// ResetPassword verifies a reset token and rotates the account's password
// hash. Forged and expired tokens both surface as ErrInvalidResetToken; a
// token whose subject no longer exists yields ErrNotFound.
//
// A still-valid token can be used more than once within its window; the
// flow provides no replay protection beyond expiry.
func (s *CredentialService) ResetPassword(ctx context.Context, token, newPassword string) (Profile, error) {
	if len(newPassword) < 6 {
		return Profile{}, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}
	userID, err := auth.VerifyResetToken(s.secret, token)
	if err != nil {
		return Profile{}, ErrInvalidResetToken
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("load user: %w", err)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return Profile{}, fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash
	if err := s.users.Update(ctx, &u); err != nil {
		return Profile{}, err
	}
	return toProfile(u), nil
}

// RequestPaymentOTP issues a one-time payment code for the user,
// overwriting any pending one, and mails it together with the payment
// details. The code itself never appears in the API response.
func (s *CredentialService) RequestPaymentOTP(ctx context.Context, userID uint64, amountCents uint32, restaurantName string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("load user: %w", err)
	}

	code, err := s.otp.Issue(u.ID)
	if err != nil {
		return fmt.Errorf("issue otp: %w", err)
	}

	subject := fmt.Sprintf("Rs. %d.%02d Payment OTP - Foodify", amountCents/100, amountCents%100)
	if err := s.mailer.Send(u.Email, subject, email.PaymentOTPHTML(code, amountCents, restaurantName)); err != nil {
		return fmt.Errorf("send otp mail: %w", err)
	}
	return nil
}

// ConfirmPaymentOTP checks the supplied code against the user's pending
// one. The gateway only confirms possession of the code; moving money is
// the caller's concern.
func (s *CredentialService) ConfirmPaymentOTP(userID uint64, code string) auth.OtpResult {
	return s.otp.Verify(userID, code)
}

// checkUnique verifies that neither email nor username (skipped when
// empty) is taken by an account other than selfID. Shared with the admin
// service, which applies the same rules.
func checkUnique(ctx context.Context, users UserStore, emailAddr, username string, selfID uint64) error {
	if emailAddr != "" {
		existing, err := users.GetByEmail(ctx, emailAddr)
		if err == nil && existing.ID != selfID {
			return repository.ErrEmailExists
		}
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check email: %w", err)
		}
	}
	if username != "" {
		existing, err := users.GetByUsername(ctx, username)
		if err == nil && existing.ID != selfID {
			return repository.ErrUsernameExists
		}
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check username: %w", err)
		}
	}
	return nil
}
