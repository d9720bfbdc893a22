package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/foodify/foodify-backend/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,full_name,username,email,phone,password_hash,role,COALESCE(profile_image,''),created_at,updated_at"

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.FullName, &u.Username, &u.Email, &u.Phone,
		&u.PasswordHash, &u.Role, &u.ProfileImage, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Create inserts a user and fills in its generated ID. Unique-key
// violations are mapped to ErrEmailExists / ErrUsernameExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (full_name, username, email, phone, password_hash, role, profile_image) VALUES (?,?,?,?,?,?,NULLIF(?,''))",
		u.FullName, u.Username, u.Email, u.Phone, u.PasswordHash, u.Role, u.ProfileImage)
	if err != nil {
		return dupKeyError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email))
}

// GetByUsername fetches a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username=? LIMIT 1", username))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

// Update rewrites all mutable columns of the user row. Callers load the
// row first and apply their patch, so a full-row write is safe here.
// Returns sql.ErrNoRows when the id does not exist.
func (r *UserRepo) Update(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET full_name=?, username=?, email=?, phone=?, password_hash=?, role=?, profile_image=NULLIF(?,'') WHERE id=?",
		u.FullName, u.Username, u.Email, u.Phone, u.PasswordHash, u.Role, u.ProfileImage, u.ID)
	if err != nil {
		return dupKeyError(err)
	}
	// RowsAffected is zero both for a missing row and for a no-op write;
	// callers always loaded the row first, so treat zero as success.
	_, err = res.RowsAffected()
	return err
}

// Delete removes a user row. Returns sql.ErrNoRows when nothing matched.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// List returns a page of users plus the total count for the same filter.
// When search is non-empty it matches full name, username and email.
func (r *UserRepo) List(ctx context.Context, page, size int, search string) ([]model.User, int, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	where := ""
	args := []any{}
	if search != "" {
		where = " WHERE full_name LIKE ? OR username LIKE ? OR email LIKE ?"
		like := "%" + search + "%"
		args = append(args, like, like, like)
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM users"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, size, (page-1)*size)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users"+where+" ORDER BY id LIMIT ? OFFSET ?", args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Username, &u.Email, &u.Phone,
			&u.PasswordHash, &u.Role, &u.ProfileImage, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}
