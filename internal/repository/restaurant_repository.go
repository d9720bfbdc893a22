package repository

import (
	"context"
	"database/sql"

	"github.com/foodify/foodify-backend/internal/model"
)

type RestaurantRepo struct{ DB *sql.DB }

func NewRestaurantRepo(db *sql.DB) *RestaurantRepo { return &RestaurantRepo{DB: db} }

const restaurantColumns = "id,name,description,address,phone,COALESCE(image_url,''),rating,created_at"

func scanRestaurants(rows *sql.Rows) ([]model.Restaurant, error) {
	defer rows.Close()
	items := []model.Restaurant{}
	for rows.Next() {
		var r model.Restaurant
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.Address, &r.Phone,
			&r.ImageURL, &r.Rating, &r.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

// List returns all restaurants ordered by rating, best first.
func (r *RestaurantRepo) List(ctx context.Context) ([]model.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+restaurantColumns+" FROM restaurants ORDER BY rating DESC, id")
	if err != nil {
		return nil, err
	}
	return scanRestaurants(rows)
}

// Search matches restaurants by name or address.
func (r *RestaurantRepo) Search(ctx context.Context, q string) ([]model.Restaurant, error) {
	like := "%" + q + "%"
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+restaurantColumns+" FROM restaurants WHERE name LIKE ? OR address LIKE ? ORDER BY rating DESC, id",
		like, like)
	if err != nil {
		return nil, err
	}
	return scanRestaurants(rows)
}

// GetByID fetches a single restaurant.
func (r *RestaurantRepo) GetByID(ctx context.Context, id uint64) (model.Restaurant, error) {
	var m model.Restaurant
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+restaurantColumns+" FROM restaurants WHERE id=? LIMIT 1", id).
		Scan(&m.ID, &m.Name, &m.Description, &m.Address, &m.Phone,
			&m.ImageURL, &m.Rating, &m.CreatedAt)
	return m, err
}
