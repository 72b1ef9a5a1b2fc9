package constant

import "math"

type FoodStatus string

const (
	FoodStatusAvailable FoodStatus = "available"
)

const (
	DefaultPage       = 1
	DefaultLimit      = 20
	DefaultOwnerLimit = 10
	MaxLimit          = 100
	TopFoodsLimit     = 6

	DefaultSortBy  = "dateAdded"
	AllCategories  = "all"
	AnonymousOwner = "Anonymous"

	// MaxOffset keeps (page-1)*limit inside MySQL's accepted OFFSET range.
	MaxOffset = math.MaxInt32
)

// Column widths of the food table, in characters.
const (
	MaxNameLen     = 255
	MaxCategoryLen = 100
	MaxImageLen    = 2048
	MaxTextLen     = 10000
)

// SortColumns maps the public sortBy values to food columns.
var SortColumns = map[string]string{
	"dateAdded":     "date_added",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
	"price":         "price",
	"name":          "name",
	"quantity":      "quantity",
	"purchaseCount": "purchase_count",
}

const (
	CacheKeyCategories = "foodhive:categories"
	CacheKeyTopFoods   = "foodhive:top-foods"
)
