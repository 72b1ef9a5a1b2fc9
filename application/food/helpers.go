package food

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/muhammadheryan/foodhive/constant"
	"github.com/muhammadheryan/foodhive/model"
	validatorx "github.com/muhammadheryan/foodhive/utils/validator"
	"github.com/shopspring/decimal"
)

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// validPrice reports whether p fits DECIMAL(12,2).
func validPrice(p decimal.Decimal) bool {
	return p.IsPositive() && p.Equal(p.Round(2)) && p.LessThan(decimal.New(1, 10))
}

func validImage(image string) bool {
	if validatorx.ValidateVar(image, "required,url") != nil {
		return false
	}
	lower := strings.ToLower(image)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = constant.DefaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > constant.MaxLimit {
		limit = constant.MaxLimit
	}
	if last := constant.MaxOffset/limit + 1; page > last {
		page = last
	}
	return page, limit
}

func totalPages(total int64, limit int) int64 {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

// applyUpdate copies the provided fields of req onto f. It returns whether
// any stored value changed and the names of fields that were rejected.
func applyUpdate(f *model.Food, req *model.UpdateFoodRequest) (bool, []string) {
	changed := false
	var invalid []string

	setText := func(name string, dst *string, src *string, required bool, maxLen int) {
		if src == nil {
			return
		}
		v := strings.TrimSpace(*src)
		if (required && v == "") || utf8.RuneCountInString(v) > maxLen {
			invalid = append(invalid, name)
			return
		}
		if v != *dst {
			*dst = v
			changed = true
		}
	}

	setText("name", &f.Name, req.Name, true, constant.MaxNameLen)
	setText("category", &f.Category, req.Category, true, constant.MaxCategoryLen)
	setText("origin", &f.Origin, req.Origin, true, constant.MaxNameLen)
	setText("madeBy", &f.MadeBy, req.MadeBy, true, constant.MaxNameLen)
	setText("description", &f.Description, req.Description, false, constant.MaxTextLen)

	if req.Image != nil {
		v := strings.TrimSpace(*req.Image)
		if utf8.RuneCountInString(v) > constant.MaxImageLen || !validImage(v) {
			invalid = append(invalid, "image")
		} else if v != f.Image {
			f.Image = v
			changed = true
		}
	}

	if req.Ingredients != nil {
		v := string(*req.Ingredients)
		setText("ingredients", &f.Ingredients, &v, true, constant.MaxTextLen)
	}

	if req.Price != nil {
		p := decimal.NewFromFloat(*req.Price)
		if !validPrice(p) {
			invalid = append(invalid, "price")
		} else if !p.Equal(f.Price) {
			f.Price = p
			changed = true
		}
	}

	if req.Quantity != nil {
		if *req.Quantity < 0 {
			invalid = append(invalid, "quantity")
		} else if *req.Quantity != f.Quantity {
			f.Quantity = *req.Quantity
			changed = true
		}
	}

	return changed, invalid
}
