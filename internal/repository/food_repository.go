package repository

import (
	"context"
	"database/sql"

	"github.com/foodify/foodify-backend/internal/model"
)

type FoodRepo struct{ DB *sql.DB }

func NewFoodRepo(db *sql.DB) *FoodRepo { return &FoodRepo{DB: db} }

const foodColumns = "id,restaurant_id,name,description,category,price_cents,COALESCE(image_url,''),is_popular,created_at"

func scanFoods(rows *sql.Rows) ([]model.Food, error) {
	defer rows.Close()
	items := []model.Food{}
	for rows.Next() {
		var f model.Food
		if err := rows.Scan(&f.ID, &f.RestaurantID, &f.Name, &f.Description, &f.Category,
			&f.PriceCents, &f.ImageURL, &f.IsPopular, &f.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

// List returns the whole menu across restaurants.
func (r *FoodRepo) List(ctx context.Context) ([]model.Food, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+foodColumns+" FROM foods ORDER BY id")
	if err != nil {
		return nil, err
	}
	return scanFoods(rows)
}

// Popular returns items flagged as popular.
func (r *FoodRepo) Popular(ctx context.Context) ([]model.Food, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+foodColumns+" FROM foods WHERE is_popular=1 ORDER BY id")
	if err != nil {
		return nil, err
	}
	return scanFoods(rows)
}

// ListByRestaurant returns the menu of one restaurant.
func (r *FoodRepo) ListByRestaurant(ctx context.Context, restaurantID uint64) ([]model.Food, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+foodColumns+" FROM foods WHERE restaurant_id=? ORDER BY id", restaurantID)
	if err != nil {
		return nil, err
	}
	return scanFoods(rows)
}

// GetByID fetches a single menu item.
func (r *FoodRepo) GetByID(ctx context.Context, id uint64) (model.Food, error) {
	var f model.Food
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+foodColumns+" FROM foods WHERE id=? LIMIT 1", id).
		Scan(&f.ID, &f.RestaurantID, &f.Name, &f.Description, &f.Category,
			&f.PriceCents, &f.ImageURL, &f.IsPopular, &f.CreatedAt)
	return f, err
}
