package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderFood is the listing snapshot taken at purchase time.
type OrderFood struct {
	Name       string          `db:"name" json:"name"`
	Price      decimal.Decimal `db:"price" json:"price"`
	Image      string          `db:"image" json:"image"`
	Owner      string          `db:"owner" json:"owner"`
	OwnerEmail string          `db:"owner_email" json:"ownerEmail"`
	OwnerUID   string          `db:"owner_uid" json:"ownerUid"`
}

type Buyer struct {
	UID     string `db:"uid" json:"uid"`
	Name    string `db:"name" json:"name"`
	Email   string `db:"email" json:"email"`
	Phone   string `db:"phone" json:"phone"`
	Address string `db:"address" json:"address"`
}

// Order is a row of the food_order table. It is never updated.
type Order struct {
	ID         string          `db:"id" json:"id"`
	FoodID     string          `db:"food_id" json:"foodId"`
	Food       OrderFood       `db:"food" json:"food"`
	Buyer      Buyer           `db:"buyer" json:"buyer"`
	Quantity   int64           `db:"quantity" json:"quantity"`
	TotalPrice decimal.Decimal `db:"total_price" json:"totalPrice"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
}

type PurchaseRequest struct {
	Quantity int64  `json:"quantity"`
	Phone    string `json:"phone" validate:"max=32"`
	Address  string `json:"address" validate:"max=500"`
}

type PurchaseResponse struct {
	Message string `json:"message"`
	Order   *Order `json:"order"`
}

type OrderListResponse struct {
	Orders []Order `json:"orders"`
}

// OrderPlacedMessage is the body of an order.placed event.
type OrderPlacedMessage struct {
	OrderID    string          `json:"orderId"`
	FoodID     string          `json:"foodId"`
	FoodName   string          `json:"foodName"`
	OwnerEmail string          `json:"ownerEmail"`
	OwnerName  string          `json:"ownerName"`
	BuyerName  string          `json:"buyerName"`
	BuyerEmail string          `json:"buyerEmail"`
	Quantity   int64           `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func NewOrderPlacedMessage(o *Order) *OrderPlacedMessage {
	return &OrderPlacedMessage{
		OrderID:    o.ID,
		FoodID:     o.FoodID,
		FoodName:   o.Food.Name,
		OwnerEmail: o.Food.OwnerEmail,
		OwnerName:  o.Food.Owner,
		BuyerName:  o.Buyer.Name,
		BuyerEmail: o.Buyer.Email,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
	}
}
