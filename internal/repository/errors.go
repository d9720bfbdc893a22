// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the
// credential service to distinguish between different failure scenarios
// without parsing driver error strings themselves. Lookups that match no
// row surface database/sql's ErrNoRows unchanged.
package repository

import (
	"errors"
	"strings"
)

// ErrEmailExists is returned when an insert or update violates the unique
// index on users.email.
var ErrEmailExists = errors.New("email already exists")

// ErrUsernameExists is returned when an insert or update violates the
// unique index on users.username.
var ErrUsernameExists = errors.New("username already exists")

// dupKeyError maps a MySQL 1062 duplicate-entry error to the matching
// sentinel based on which unique key was hit. Unrelated errors are
// returned unchanged.
func dupKeyError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "1062") {
		return err
	}
	switch {
	case strings.Contains(msg, "email"):
		return ErrEmailExists
	case strings.Contains(msg, "username"):
		return ErrUsernameExists
	}
	return err
}
