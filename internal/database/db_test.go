package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodify/foodify-backend/internal/config"
)

func TestDSN(t *testing.T) {
	cfg := config.Config{
		DBUser: "foodify",
		DBPass: "s3cret",
		DBHost: "db.internal",
		DBPort: "3306",
		DBName: "foodify",
	}
	assert.Equal(t,
		"foodify:s3cret@tcp(db.internal:3306)/foodify?charset=utf8mb4&parseTime=true&loc=UTC",
		DSN(cfg))
}

func TestDSN_EmptyPassword(t *testing.T) {
	cfg := config.Config{
		DBUser: "foodify",
		DBHost: "localhost",
		DBPort: "3306",
		DBName: "foodify",
	}
	assert.Equal(t,
		"foodify@tcp(localhost:3306)/foodify?charset=utf8mb4&parseTime=true&loc=UTC",
		DSN(cfg))
}
