package order

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/foodhive/cmd/config"
	"github.com/muhammadheryan/foodhive/constant"
	"github.com/muhammadheryan/foodhive/model"
	foodrepo "github.com/muhammadheryan/foodhive/repository/food"
	orderrepo "github.com/muhammadheryan/foodhive/repository/order"
	redisrepo "github.com/muhammadheryan/foodhive/repository/redis"
	txrepo "github.com/muhammadheryan/foodhive/repository/tx"
	userrepo "github.com/muhammadheryan/foodhive/repository/user"
	"github.com/muhammadheryan/foodhive/thirdparty/rabbitmq"
	ctxutil "github.com/muhammadheryan/foodhive/utils/context"
	"github.com/muhammadheryan/foodhive/utils/errors"
	"github.com/muhammadheryan/foodhive/utils/logger"
	validatorx "github.com/muhammadheryan/foodhive/utils/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// sideEffectTimeout bounds the work done after a purchase commits.
const sideEffectTimeout = 5 * time.Second

type OrderApp interface {
	Purchase(ctx context.Context, foodID string, buyer model.Identity, req *model.PurchaseRequest) (*model.Order, error)
	ListOrders(ctx context.Context, buyer model.Identity, email string) (*model.OrderListResponse, error)
}

type orderAppImpl struct {
	config    *config.Config
	txRepo    txrepo.TxRepository
	foodRepo  foodrepo.FoodRepository
	orderRepo orderrepo.OrderRepository
	userRepo  userrepo.UserRepository
	cacheRepo redisrepo.Repository
	publisher rabbitmq.OrderPublisher
}

func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, foodRepo foodrepo.FoodRepository, orderRepo orderrepo.OrderRepository,
	userRepo userrepo.UserRepository, cacheRepo redisrepo.Repository, publisher rabbitmq.OrderPublisher) OrderApp {
	return &orderAppImpl{
		config:    config,
		txRepo:    txRepo,
		foodRepo:  foodRepo,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		publisher: publisher,
	}
}

func (s *orderAppImpl) Purchase(ctx context.Context, foodID string, buyer model.Identity, req *model.PurchaseRequest) (*model.Order, error) {
	if _, err := uuid.Parse(foodID); err != nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if buyer.Email == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)
	if err := validatorx.ValidateStruct(req); err != nil {
		_, invalid := validatorx.FieldErrors(err)
		return nil, errors.SetFieldError(constant.ErrInvalidFields, invalid)
	}

	phone, address := s.contactDetails(ctx, buyer, req)

	// stock and order writes finish even if the client goes away
	txCtx, cancel := ctxutil.Detach(ctx)
	defer cancel()

	tx, err := s.txRepo.BeginTx(txCtx)
	if err != nil {
		logger.Error("[Purchase] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	food, err := s.foodRepo.GetForUpdateTx(txCtx, tx, foodID)
	if err != nil {
		logger.Error("[Purchase] get food", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if food == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if buyer.SameEmail(food.AddedBy.Email) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if req.Quantity < 1 || req.Quantity > food.Quantity {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	ok, err := s.foodRepo.DecrementStockTx(txCtx, tx, food.ID, req.Quantity, now)
	if err != nil {
		logger.Error("[Purchase] decrement stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		logger.Info("[Purchase] stock taken concurrently", zap.String("food_id", food.ID), zap.Int64("quantity", req.Quantity))
		return nil, errors.SetCustomError(constant.ErrOutOfStock)
	}

	order := &model.Order{
		ID:     uuid.NewString(),
		FoodID: food.ID,
		Food: model.OrderFood{
			Name:       food.Name,
			Price:      food.Price,
			Image:      food.Image,
			Owner:      food.AddedBy.Name,
			OwnerEmail: food.AddedBy.Email,
			OwnerUID:   food.AddedBy.UID,
		},
		Buyer: model.Buyer{
			UID:     buyer.UID,
			Name:    buyer.Name,
			Email:   buyer.Email,
			Phone:   phone,
			Address: address,
		},
		Quantity:   req.Quantity,
		TotalPrice: food.Price.Mul(decimal.NewFromInt(req.Quantity)).Round(2),
		CreatedAt:  now,
	}

	if err := s.orderRepo.InsertOrderTx(txCtx, tx, order); err != nil {
		logger.Error("[Purchase] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Purchase] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	logger.Info("[Purchase] order placed",
		zap.String("order_id", order.ID),
		zap.String("food_id", food.ID),
		zap.Int64("quantity", order.Quantity))

	s.afterPurchase(ctx, order)
	return order, nil
}

// contactDetails prefers the request values and falls back to the stored profile.
func (s *orderAppImpl) contactDetails(ctx context.Context, buyer model.Identity, req *model.PurchaseRequest) (string, string) {
	phone := strings.TrimSpace(req.Phone)
	address := strings.TrimSpace(req.Address)
	if (phone != "" && address != "") || buyer.UID == "" {
		return phone, address
	}

	profile, err := s.userRepo.Get(ctx, buyer.UID)
	if err != nil {
		logger.Warn("[Purchase] read profile", zap.String("uid", buyer.UID), zap.String("error", err.Error()))
		return phone, address
	}
	if profile == nil {
		return phone, address
	}
	if phone == "" {
		phone = profile.Phone
	}
	if address == "" {
		address = profile.Address
	}
	return phone, address
}

func (s *orderAppImpl) afterPurchase(ctx context.Context, order *model.Order) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()

	if err := s.cacheRepo.Delete(ctx, constant.CacheKeyTopFoods); err != nil {
		logger.Warn("[Purchase] invalidate top foods", zap.String("error", err.Error()))
	}

	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderPlaced(ctx, model.NewOrderPlacedMessage(order)); err != nil {
		logger.Error("[Purchase] publish order placed", zap.String("order_id", order.ID), zap.String("error", err.Error()))
	}
}

func (s *orderAppImpl) ListOrders(ctx context.Context, buyer model.Identity, email string) (*model.OrderListResponse, error) {
	if buyer.Email == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if email = strings.TrimSpace(email); email != "" && !buyer.SameEmail(email) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	orders, err := s.orderRepo.ListByBuyerEmail(ctx, buyer.Email)
	if err != nil {
		logger.Error("[ListOrders] error orderRepo.ListByBuyerEmail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return &model.OrderListResponse{Orders: orders}, nil
}
