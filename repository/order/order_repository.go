package order

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/foodhive/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.Order) error
	ListByBuyerEmail(ctx context.Context, email string) ([]model.Order, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrderQuery = `INSERT INTO food_order (id, food_id, food_name, food_price, food_image, food_owner, food_owner_email, food_owner_uid,
buyer_uid, buyer_name, buyer_email, buyer_phone, buyer_address, quantity, total_price, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	listByBuyerQuery = `SELECT id, food_id,
food_name AS "food.name", food_price AS "food.price", food_image AS "food.image",
food_owner AS "food.owner", food_owner_email AS "food.owner_email", food_owner_uid AS "food.owner_uid",
buyer_uid AS "buyer.uid", buyer_name AS "buyer.name", buyer_email AS "buyer.email",
buyer_phone AS "buyer.phone", buyer_address AS "buyer.address",
quantity, total_price, created_at
FROM food_order WHERE buyer_email = ? ORDER BY created_at DESC, id DESC`
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, o *model.Order) error {
	_, err := tx.ExecContext(ctx, insertOrderQuery,
		o.ID, o.FoodID, o.Food.Name, o.Food.Price, o.Food.Image, o.Food.Owner, o.Food.OwnerEmail, o.Food.OwnerUID,
		o.Buyer.UID, o.Buyer.Name, o.Buyer.Email, o.Buyer.Phone, o.Buyer.Address, o.Quantity, o.TotalPrice, o.CreatedAt)
	return err
}

// ListByBuyerEmail returns the buyer's orders, newest first.
func (r *SQL) ListByBuyerEmail(ctx context.Context, email string) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	if err := r.conn.SelectContext(ctx, &orders, listByBuyerQuery, email); err != nil {
		return nil, err
	}
	return orders, nil
}
