package repository

import (
	"context"
	"database/sql"

	"github.com/foodify/foodify-backend/internal/model"
)

type OrderRepo struct{ DB *sql.DB }

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{DB: db} }

// Create inserts an order together with its items in a single transaction
// and fills in the generated ids.
func (r *OrderRepo) Create(ctx context.Context, o *model.Order, items []model.OrderItem) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO orders (user_id, restaurant_id, status, total_amount_cents) VALUES (?,?,?,?)",
		o.UserID, o.RestaurantID, o.Status, o.TotalAmountCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	o.ID = uint64(id)

	for i := range items {
		items[i].OrderID = o.ID
		res, err := tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, food_id, quantity, price_cents) VALUES (?,?,?,?)",
			items[i].OrderID, items[i].FoodID, items[i].Quantity, items[i].PriceCents)
		if err != nil {
			return err
		}
		itemID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		items[i].ID = uint64(itemID)
	}
	return tx.Commit()
}

// GetByID fetches one order.
func (r *OrderRepo) GetByID(ctx context.Context, id uint64) (model.Order, error) {
	var o model.Order
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,restaurant_id,status,total_amount_cents,created_at FROM orders WHERE id=? LIMIT 1",
		id).Scan(&o.ID, &o.UserID, &o.RestaurantID, &o.Status, &o.TotalAmountCents, &o.CreatedAt)
	return o, err
}

// ListByUser returns all orders of one user, newest first.
func (r *OrderRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Order, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,user_id,restaurant_id,status,total_amount_cents,created_at FROM orders WHERE user_id=? ORDER BY id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.RestaurantID, &o.Status, &o.TotalAmountCents, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// Items returns the line items of an order.
func (r *OrderRepo) Items(ctx context.Context, orderID uint64) ([]model.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,order_id,food_id,quantity,price_cents FROM order_items WHERE order_id=? ORDER BY id",
		orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []model.OrderItem{}
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.FoodID, &it.Quantity, &it.PriceCents); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpdateStatus moves an order to a new status. Returns sql.ErrNoRows when
// the order does not exist.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE orders SET status=? WHERE id=?", status, id)
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
