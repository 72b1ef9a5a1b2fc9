package food

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/foodhive/cmd/config"
	"github.com/muhammadheryan/foodhive/constant"
	"github.com/muhammadheryan/foodhive/model"
	foodrepo "github.com/muhammadheryan/foodhive/repository/food"
	redisrepo "github.com/muhammadheryan/foodhive/repository/redis"
	txrepo "github.com/muhammadheryan/foodhive/repository/tx"
	"github.com/muhammadheryan/foodhive/utils/errors"
	"github.com/muhammadheryan/foodhive/utils/logger"
	validatorx "github.com/muhammadheryan/foodhive/utils/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type FoodApp interface {
	CreateFood(ctx context.Context, owner model.Identity, req *model.CreateFoodRequest) (*model.Food, error)
	UpdateFood(ctx context.Context, id string, owner model.Identity, req *model.UpdateFoodRequest) (*model.Food, error)
	DeleteFood(ctx context.Context, id string, owner model.Identity) error
	GetFood(ctx context.Context, id string) (*model.Food, error)
	ListFoods(ctx context.Context, filter *model.FoodFilter) (*model.FoodListResponse, error)
	ListMyFoods(ctx context.Context, owner model.Identity, page, limit int) (*model.FoodListResponse, error)
	ListCategories(ctx context.Context) ([]string, error)
	TopFoods(ctx context.Context) ([]model.Food, error)
}

type foodAppImpl struct {
	config    *config.Config
	txRepo    txrepo.TxRepository
	foodRepo  foodrepo.FoodRepository
	cacheRepo redisrepo.Repository
}

func NewFoodApp(config *config.Config, txRepo txrepo.TxRepository, foodRepo foodrepo.FoodRepository, cacheRepo redisrepo.Repository) FoodApp {
	return &foodAppImpl{config: config, txRepo: txRepo, foodRepo: foodRepo, cacheRepo: cacheRepo}
}

// now is truncated to the DATETIME(3) precision of the food table.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *foodAppImpl) CreateFood(ctx context.Context, owner model.Identity, req *model.CreateFoodRequest) (*model.Food, error) {
	if owner.Email == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Image = strings.TrimSpace(req.Image)
	req.Category = strings.TrimSpace(req.Category)
	req.Origin = strings.TrimSpace(req.Origin)
	req.Ingredients = model.Ingredients(strings.TrimSpace(string(req.Ingredients)))
	req.Description = strings.TrimSpace(req.Description)
	req.MadeBy = strings.TrimSpace(req.MadeBy)

	if err := validatorx.ValidateStruct(req); err != nil {
		missing, invalid := validatorx.FieldErrors(err)
		if len(missing) > 0 {
			return nil, errors.SetFieldError(constant.ErrMissingFields, missing)
		}
		if len(invalid) > 0 {
			return nil, errors.SetFieldError(constant.ErrInvalidFields, invalid)
		}
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	var invalid []string
	if !validImage(req.Image) {
		invalid = append(invalid, "image")
	}
	price := decimal.NewFromFloat(req.Price)
	if !validPrice(price) {
		invalid = append(invalid, "price")
	}
	if len(invalid) > 0 {
		return nil, errors.SetFieldError(constant.ErrInvalidFields, invalid)
	}

	ownerName := strings.TrimSpace(owner.Name)
	if ownerName == "" {
		ownerName = constant.AnonymousOwner
	}

	ts := now()
	food := &model.Food{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Image:       req.Image,
		Category:    req.Category,
		Price:       price,
		Quantity:    req.Quantity,
		Origin:      req.Origin,
		Ingredients: string(req.Ingredients),
		Description: req.Description,
		MadeBy:      req.MadeBy,
		AddedBy: model.Owner{
			Name:  ownerName,
			Email: owner.Email,
			UID:   owner.UID,
		},
		PurchaseCount: 0,
		Status:        constant.FoodStatusAvailable,
		DateAdded:     ts,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}

	if err := s.foodRepo.Create(ctx, food); err != nil {
		logger.Error("[CreateFood] error foodRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	created, err := s.foodRepo.GetByID(ctx, food.ID)
	if err != nil || created == nil {
		logger.Error("[CreateFood] error reading created food", zap.String("food_id", food.ID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.invalidate(ctx, constant.CacheKeyCategories)
	logger.Info("[CreateFood] food created", zap.String("food_id", created.ID), zap.String("owner", owner.Email))
	return created, nil
}

func (s *foodAppImpl) UpdateFood(ctx context.Context, id string, owner model.Identity, req *model.UpdateFoodRequest) (*model.Food, error) {
	if !validID(id) || owner.Email == "" {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateFood] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// missing and not-owned are reported the same way
	existing, err := s.foodRepo.GetOwnedForUpdateTx(ctx, tx, id, owner.Email)
	if err != nil {
		logger.Error("[UpdateFood] get owned food", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	updated := *existing
	changed, invalid := applyUpdate(&updated, req)
	if len(invalid) > 0 {
		return nil, errors.SetFieldError(constant.ErrInvalidFields, invalid)
	}
	if !changed {
		return nil, errors.SetCustomError(constant.ErrNoChanges)
	}
	updated.UpdatedAt = now()

	if err := s.foodRepo.UpdateTx(ctx, tx, &updated); err != nil {
		logger.Error("[UpdateFood] update food", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateFood] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidate(ctx, constant.CacheKeyCategories, constant.CacheKeyTopFoods)
	return &updated, nil
}

func (s *foodAppImpl) DeleteFood(ctx context.Context, id string, owner model.Identity) error {
	if !validID(id) || owner.Email == "" {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	deleted, err := s.foodRepo.Delete(ctx, id, owner.Email)
	if err != nil {
		logger.Error("[DeleteFood] error foodRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	s.invalidate(ctx, constant.CacheKeyCategories, constant.CacheKeyTopFoods)
	logger.Info("[DeleteFood] food deleted", zap.String("food_id", id), zap.String("owner", owner.Email))
	return nil
}

func (s *foodAppImpl) GetFood(ctx context.Context, id string) (*model.Food, error) {
	if !validID(id) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	food, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetFood] error foodRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if food == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return food, nil
}

func (s *foodAppImpl) ListFoods(ctx context.Context, filter *model.FoodFilter) (*model.FoodListResponse, error) {
	page, limit := normalizePage(filter.Page, filter.Limit, constant.DefaultLimit)

	category := strings.TrimSpace(filter.Category)
	if strings.EqualFold(category, constant.AllCategories) {
		category = ""
	}
	sortColumn, ok := constant.SortColumns[filter.SortBy]
	if !ok {
		sortColumn = constant.SortColumns[constant.DefaultSortBy]
	}

	return s.list(ctx, "[ListFoods]", &model.FoodQuery{
		Status:     constant.FoodStatusAvailable,
		Category:   category,
		Search:     strings.TrimSpace(filter.Search),
		SortColumn: sortColumn,
		Ascending:  strings.EqualFold(filter.SortOrder, "asc"),
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}, page)
}

func (s *foodAppImpl) ListMyFoods(ctx context.Context, owner model.Identity, page, limit int) (*model.FoodListResponse, error) {
	if owner.Email == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	page, limit = normalizePage(page, limit, constant.DefaultOwnerLimit)

	return s.list(ctx, "[ListMyFoods]", &model.FoodQuery{
		OwnerEmail: owner.Email,
		SortColumn: constant.SortColumns[constant.DefaultSortBy],
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}, page)
}

func (s *foodAppImpl) list(ctx context.Context, op string, q *model.FoodQuery, page int) (*model.FoodListResponse, error) {
	items, total, err := s.foodRepo.List(ctx, q)
	if err != nil {
		logger.Error(op+" error foodRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if items == nil {
		items = []model.Food{}
	}

	return &model.FoodListResponse{
		Items: items,
		Pagination: model.Pagination{
			Page:       page,
			Limit:      q.Limit,
			Total:      total,
			TotalPages: totalPages(total, q.Limit),
		},
	}, nil
}

func (s *foodAppImpl) ListCategories(ctx context.Context) ([]string, error) {
	var cached []string
	if found, err := s.cacheRepo.GetJSON(ctx, constant.CacheKeyCategories, &cached); err != nil {
		logger.Warn("[ListCategories] cache read", zap.String("error", err.Error()))
	} else if found {
		return cached, nil
	}

	categories, err := s.foodRepo.ListCategories(ctx)
	if err != nil {
		logger.Error("[ListCategories] error foodRepo.ListCategories", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	sort.Strings(categories)

	if err := s.cacheRepo.SetJSON(ctx, constant.CacheKeyCategories, categories, s.config.Cache.CategoriesTTL); err != nil {
		logger.Warn("[ListCategories] cache write", zap.String("error", err.Error()))
	}
	return categories, nil
}

func (s *foodAppImpl) TopFoods(ctx context.Context) ([]model.Food, error) {
	var cached []model.Food
	if found, err := s.cacheRepo.GetJSON(ctx, constant.CacheKeyTopFoods, &cached); err != nil {
		logger.Warn("[TopFoods] cache read", zap.String("error", err.Error()))
	} else if found {
		return cached, nil
	}

	foods, err := s.foodRepo.ListTop(ctx, constant.TopFoodsLimit)
	if err != nil {
		logger.Error("[TopFoods] error foodRepo.ListTop", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.cacheRepo.SetJSON(ctx, constant.CacheKeyTopFoods, foods, s.config.Cache.TopFoodsTTL); err != nil {
		logger.Warn("[TopFoods] cache write", zap.String("error", err.Error()))
	}
	return foods, nil
}

func (s *foodAppImpl) invalidate(ctx context.Context, keys ...string) {
	if err := s.cacheRepo.Delete(ctx, keys...); err != nil {
		logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.String("error", err.Error()))
	}
}
