package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/foodify/foodify-backend/internal/auth"
	"github.com/foodify/foodify-backend/internal/model"
)

// AdminUserService backs the admin user panel: paginated listing with
// search, plus create/update/delete with the same uniqueness rules as
// public registration. Unlike registration it may assign any role —
// callers must have been authorized as admin by the HTTP layer before
// these methods are reached; the service itself does not re-check.
type AdminUserService struct {
	users      UserStore
	bcryptCost int
}

func NewAdminUserService(users UserStore, bcryptCost int) *AdminUserService {
	return &AdminUserService{users: users, bcryptCost: bcryptCost}
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int `json:"page"`
	Size       int `json:"size"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// AdminCreateInput carries the admin-creation fields. Role defaults to
// "user" when empty.
type AdminCreateInput struct {
	FullName     string
	Username     string
	Email        string
	Phone        string
	Password     string
	Role         string
	ProfileImage string
}

// AdminUpdateInput carries partial updates; empty strings mean "leave
// unchanged". Password, when present, is re-hashed before storage.
type AdminUpdateInput struct {
	FullName     string
	Username     string
	Email        string
	Phone        string
	Password     string
	Role         string
	ProfileImage string
}

func validRole(role string) bool {
	return role == model.RoleUser || role == model.RoleAdmin
}

// Create adds an account with an arbitrary role after the same email and
// username uniqueness checks as registration.
func (s *AdminUserService) Create(ctx context.Context, in AdminCreateInput) (Profile, error) {
	if len(in.Password) < 6 {
		return Profile{}, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}
	role := in.Role
	if role == "" {
		role = model.RoleUser
	}
	if !validRole(role) {
		return Profile{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, in.Role)
	}

	u := model.User{
		FullName:     strings.TrimSpace(in.FullName),
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:        strings.TrimSpace(in.Phone),
		Role:         role,
		ProfileImage: in.ProfileImage,
	}

	if err := checkUnique(ctx, s.users, u.Email, u.Username, 0); err != nil {
		return Profile{}, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return Profile{}, fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash

	if err := s.users.Create(ctx, &u); err != nil {
		return Profile{}, err
	}
	return toProfile(u), nil
}

// List returns one page of users matching the optional search term.
func (s *AdminUserService) List(ctx context.Context, page, size int, search string) ([]Profile, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	users, total, err := s.users.List(ctx, page, size, search)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list users: %w", err)
	}
	profiles := make([]Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, toProfile(u))
	}
	pages := (total + size - 1) / size
	return profiles, Pagination{Page: page, Size: size, TotalItems: total, TotalPages: pages}, nil
}

// Get returns one account by id.
func (s *AdminUserService) Get(ctx context.Context, id uint64) (Profile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("load user: %w", err)
	}
	return toProfile(u), nil
}

// Update applies a partial edit. Changed email or username values are
// checked against every other account; the password is re-hashed only
// when one is supplied.
func (s *AdminUserService) Update(ctx context.Context, id uint64, in AdminUpdateInput) (Profile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("load user: %w", err)
	}

	newEmail := strings.ToLower(strings.TrimSpace(in.Email))
	newUsername := strings.TrimSpace(in.Username)
	checkEmail, checkUsername := "", ""
	if newEmail != "" && newEmail != u.Email {
		checkEmail = newEmail
	}
	if newUsername != "" && newUsername != u.Username {
		checkUsername = newUsername
	}
	if checkEmail != "" || checkUsername != "" {
		if err := checkUnique(ctx, s.users, checkEmail, checkUsername, u.ID); err != nil {
			return Profile{}, err
		}
	}

	if v := strings.TrimSpace(in.FullName); v != "" {
		u.FullName = v
	}
	if checkUsername != "" {
		u.Username = checkUsername
	}
	if checkEmail != "" {
		u.Email = checkEmail
	}
	if v := strings.TrimSpace(in.Phone); v != "" {
		u.Phone = v
	}
	if in.ProfileImage != "" {
		u.ProfileImage = in.ProfileImage
	}
	if in.Role != "" {
		if !validRole(in.Role) {
			return Profile{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, in.Role)
		}
		u.Role = in.Role
	}
	if in.Password != "" {
		if len(in.Password) < 6 {
			return Profile{}, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
		}
		hash, err := auth.HashPassword(in.Password, s.bcryptCost)
		if err != nil {
			return Profile{}, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = hash
	}

	if err := s.users.Update(ctx, &u); err != nil {
		return Profile{}, err
	}
	return toProfile(u), nil
}

// Delete removes an account.
func (s *AdminUserService) Delete(ctx context.Context, id uint64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
