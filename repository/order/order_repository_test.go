package order

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/foodhive/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertOrderTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewOrderRepository(sqlx.NewDb(db, "sqlmock"))

	now := time.Now().UTC()
	o := &model.Order{
		ID:     "order-1",
		FoodID: "food-1",
		Food: model.OrderFood{
			Name: "Taco", Price: decimal.NewFromInt(5), Image: "https://x/y.jpg",
			Owner: "Alice", OwnerEmail: "alice@example.com", OwnerUID: "uid-a",
		},
		Buyer: model.Buyer{
			UID: "uid-b", Name: "Bob", Email: "bob@example.com", Phone: "0812", Address: "Main St 1",
		},
		Quantity:   3,
		TotalPrice: decimal.NewFromInt(15),
		CreatedAt:  now,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO food_order")).
		WithArgs("order-1", "food-1", "Taco", "5", "https://x/y.jpg", "Alice", "alice@example.com", "uid-a",
			"uid-b", "Bob", "bob@example.com", "0812", "Main St 1", 3, "15", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := sqlx.NewDb(db, "sqlmock").Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.InsertOrderTx(context.Background(), tx, o))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByBuyerEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewOrderRepository(sqlx.NewDb(db, "sqlmock"))

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "food_id", "food.name", "food.price", "food.image", "food.owner", "food.owner_email", "food.owner_uid",
		"buyer.uid", "buyer.name", "buyer.email", "buyer.phone", "buyer.address", "quantity", "total_price", "created_at",
	}).
		AddRow("order-2", "food-1", "Taco", "5.00", "img", "Alice", "alice@example.com", "uid-a",
			"uid-b", "Bob", "bob@example.com", "", "", 1, "5.00", now).
		AddRow("order-1", "food-1", "Taco", "5.00", "img", "Alice", "alice@example.com", "uid-a",
			"uid-b", "Bob", "bob@example.com", "", "", 3, "15.00", now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("FROM food_order WHERE buyer_email = ? ORDER BY created_at DESC, id DESC")).
		WithArgs("bob@example.com").
		WillReturnRows(rows)

	got, err := repo.ListByBuyerEmail(context.Background(), "bob@example.com")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "order-2", got[0].ID)
	assert.Equal(t, "alice@example.com", got[1].Food.OwnerEmail)
	assert.Equal(t, "bob@example.com", got[1].Buyer.Email)
	assert.True(t, decimal.NewFromInt(15).Equal(got[1].TotalPrice))
	assert.NoError(t, mock.ExpectationsWereMet())
}
