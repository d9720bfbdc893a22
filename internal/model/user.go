package model

import "time"

// Role values stored in users.role. Public registration always produces
// RoleUser; RoleAdmin is only assignable through the admin panel.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an application user record as stored in the `users`
// table. Email and username are each globally unique. PasswordHash is a
// bcrypt digest; the plaintext password never leaves the hashing layer.
// ProfileImage holds an opaque reference (filename) and may be empty.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	FullName     – display name.
//	Username     – unique handle.
//	Email        – unique email address.
//	Phone        – contact phone number.
//	PasswordHash – bcrypt hashed password.
//	Role         – "user" or "admin".
//	ProfileImage – optional profile image reference.
//	CreatedAt    – timestamp of creation.
//	UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	FullName     string    // users.full_name
	Username     string    // users.username
	Email        string    // users.email
	Phone        string    // users.phone
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	ProfileImage string    // users.profile_image (nullable, empty when unset)
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
