package model

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"github.com/muhammadheryan/foodhive/constant"
	"github.com/shopspring/decimal"
)

func init() {
	// prices go out as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

type Owner struct {
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	UID   string `db:"uid" json:"uid"`
}

// Food is a row of the food table.
type Food struct {
	ID            string              `db:"id" json:"id"`
	Name          string              `db:"name" json:"name"`
	Image         string              `db:"image" json:"image"`
	Category      string              `db:"category" json:"category"`
	Price         decimal.Decimal     `db:"price" json:"price"`
	Quantity      int64               `db:"quantity" json:"quantity"`
	Origin        string              `db:"origin" json:"origin"`
	Ingredients   string              `db:"ingredients" json:"ingredients"`
	Description   string              `db:"description" json:"description"`
	MadeBy        string              `db:"made_by" json:"madeBy"`
	AddedBy       Owner               `db:"added_by" json:"addedBy"`
	PurchaseCount int64               `db:"purchase_count" json:"purchaseCount"`
	Status        constant.FoodStatus `db:"status" json:"status"`
	DateAdded     time.Time           `db:"date_added" json:"dateAdded"`
	CreatedAt     time.Time           `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time           `db:"updated_at" json:"updatedAt"`
}

// Ingredients accepts either a JSON string or an array of strings.
type Ingredients string

func (i *Ingredients) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*i = Ingredients(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return &json.UnmarshalTypeError{Value: "ingredients", Type: reflect.TypeOf(""), Offset: 0}
	}
	parts := make([]string, 0, len(list))
	for _, p := range list {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	*i = Ingredients(strings.Join(parts, ", "))
	return nil
}

type CreateFoodRequest struct {
	Name        string      `json:"name" validate:"required,max=255"`
	Image       string      `json:"image" validate:"required,max=2048,url"`
	Category    string      `json:"category" validate:"required,max=100"`
	Price       float64     `json:"price" validate:"required,gt=0"`
	Quantity    int64       `json:"quantity" validate:"required,gt=0"`
	Origin      string      `json:"origin" validate:"required,max=255"`
	Ingredients Ingredients `json:"ingredients" validate:"required,max=10000"`
	Description string      `json:"description" validate:"max=10000"`
	MadeBy      string      `json:"madeBy" validate:"required,max=255"`
}

// UpdateFoodRequest is a partial update; nil fields are left untouched.
// id and addedBy are deliberately absent so they can never be set by a client.
type UpdateFoodRequest struct {
	Name        *string      `json:"name"`
	Image       *string      `json:"image"`
	Category    *string      `json:"category"`
	Price       *float64     `json:"price"`
	Quantity    *int64       `json:"quantity"`
	Origin      *string      `json:"origin"`
	Ingredients *Ingredients `json:"ingredients"`
	Description *string      `json:"description"`
	MadeBy      *string      `json:"madeBy"`
}

type FoodFilter struct {
	Page      int
	Limit     int
	Category  string
	Search    string
	SortBy    string
	SortOrder string
}

// FoodQuery is the normalized filter handed to the repository.
type FoodQuery struct {
	Status     constant.FoodStatus
	Category   string
	Search     string
	OwnerEmail string
	SortColumn string
	Ascending  bool
	Limit      int
	Offset     int
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

type FoodListResponse struct {
	Items      []Food     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type FoodResponse struct {
	Message string `json:"message"`
	Food    *Food  `json:"food,omitempty"`
}
