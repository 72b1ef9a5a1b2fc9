package order_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	apporder "github.com/muhammadheryan/foodhive/application/order"
	"github.com/muhammadheryan/foodhive/cmd/config"
	"github.com/muhammadheryan/foodhive/constant"
	foodmocks "github.com/muhammadheryan/foodhive/mocks/repository/food"
	ordermocks "github.com/muhammadheryan/foodhive/mocks/repository/order"
	redismocks "github.com/muhammadheryan/foodhive/mocks/repository/redis"
	txmocks "github.com/muhammadheryan/foodhive/mocks/repository/tx"
	usermocks "github.com/muhammadheryan/foodhive/mocks/repository/user"
	rabbitmocks "github.com/muhammadheryan/foodhive/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/foodhive/model"
	cerr "github.com/muhammadheryan/foodhive/utils/errors"
	"github.com/muhammadheryan/foodhive/utils/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const foodID = "0b6f3d1e-8a3b-4c7e-9f10-5d2c8e7a4b21"

var (
	seller = model.Owner{Name: "Olive", Email: "olive@foodhive.io", UID: "u-olive"}
	buyer  = model.Identity{UID: "u-bob", Name: "Bob", Email: "bob@foodhive.io"}
)

func food(quantity int64) *model.Food {
	return &model.Food{
		ID:       foodID,
		Name:     "Tom Yum",
		Image:    "https://img.example.com/tomyum.jpg",
		Price:    decimal.RequireFromString("7.35"),
		Quantity: quantity,
		AddedBy:  seller,
		Status:   constant.FoodStatusAvailable,
	}
}

type fields struct {
	txRepo    *txmocks.TxRepository
	foodRepo  *foodmocks.FoodRepository
	orderRepo *ordermocks.OrderRepository
	userRepo  *usermocks.UserRepository
	cacheRepo *redismocks.RedisRepository
	publisher *rabbitmocks.OrderPublisher
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestOrderApp_Purchase(t *testing.T) {
	type args struct {
		foodID string
		buyer  model.Identity
		req    *model.PurchaseRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
		check    func(t *testing.T, got *model.Order)
	}{
		{
			name: "success: purchase with contact details in request",
			args: args{
				foodID: foodID,
				buyer:  buyer,
				req:    &model.PurchaseRequest{Quantity: 3, Phone: " 0812 ", Address: "1 Main St"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.foodRepo.On("GetForUpdateTx", mock.Anything, tx, foodID).Return(food(5), nil).Once()
				f.foodRepo.On("DecrementStockTx", mock.Anything, tx, foodID, int64(3), mock.AnythingOfType("time.Time")).Return(true, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(o *model.Order) bool {
					return o.FoodID == foodID && o.Quantity == 3 &&
						o.Buyer.Email == buyer.Email && o.Buyer.Phone == "0812" &&
						o.Food.OwnerEmail == seller.Email && o.Food.Name == "Tom Yum"
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.cacheRepo.On("Delete", mock.Anything, constant.CacheKeyTopFoods).Return(nil).Once()
				f.publisher.On("PublishOrderPlaced", mock.Anything, mock.MatchedBy(func(m *model.OrderPlacedMessage) bool {
					return m.FoodID == foodID && m.OwnerEmail == seller.Email && m.Quantity == 3
				})).Return(nil).Once()
			},
			check: func(t *testing.T, got *model.Order) {
				assert.Equal(t, "22.05", got.TotalPrice.StringFixed(2))
				assert.Equal(t, "1 Main St", got.Buyer.Address)
				assert.NotEmpty(t, got.ID)
			},
		},
		{
			name: "success: buying the whole stock, contact filled from profile, publish failure ignored",
			args: args{
				foodID: foodID,
				buyer:  buyer,
				req:    &model.PurchaseRequest{Quantity: 5},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.userRepo.On("Get", mock.Anything, buyer.UID).Return(&model.UserProfile{UID: buyer.UID, Phone: "0899", Address: "2 Side St"}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.foodRepo.On("GetForUpdateTx", mock.Anything, tx, foodID).Return(food(5), nil).Once()
				f.foodRepo.On("DecrementStockTx", mock.Anything, tx, foodID, int64(5), mock.Anything).Return(true, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.cacheRepo.On("Delete", mock.Anything, constant.CacheKeyTopFoods).Return(nil).Once()
				f.publisher.On("PublishOrderPlaced", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			check: func(t *testing.T, got *model.Order) {
				assert.Equal(t, "0899", got.Buyer.Phone)
				assert.Equal(t, "2 Side St", got.Buyer.Address)
				assert.Equal(t, "36.75", got.TotalPrice.StringFixed(2))
			},
		},
		{
			name: "error: malformed id",
			args: args{
				foodID: "abc",
				buyer:  buyer,
				req:    &model.PurchaseRequest{Quantity: 1, Phone: "1", Address: "a"},
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: food not found",
			args: args{
				foodID: foodID,
				buyer:  buyer,
				req:    &model.PurchaseRequest{Quantity: 1, Phone: "1", Address: "a"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.foodRepo.On("GetForUpdateTx", mock.Anything, tx, foodID).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: owner buying own food, regardless of quantity",
			args: args{
				foodID: foodID,
				buyer:  model.Identity{UID: seller.UID, Name: seller.Name, Email: "OLIVE@foodhive.io"},
				req:    &model.PurchaseRequest{Quantity: 999, Phone: "1", Address: "a"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.foodRepo.On("GetForUpdateTx", mock.Anything, tx, foodID).Return(food(5), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: zero quantity",
			args: args{
				foodID: foodID,
				buyer:  buyer,
				req:    &model.PurchaseRequest{Quantity: 0, Phone: "1", Address: "a"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.foodRepo.On("GetForUpdateTx", mock.Anything, tx, foodID).Return(food(5), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
		{
			name: "error: more than available",
			args: args{
				foodID: foodID,
				buyer:  buyer,
				req:    &model.PurchaseRequest{Quantity: 6, Phone: "1", Address: "a"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.foodRepo.On("GetForUpdateTx", mock.Anything, tx, foodID).Return(food(5), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
		{
			name: "error: stock taken by a concurrent purchase",
			args: args{
				foodID: foodID,
				buyer:  buyer,
				req:    &model.PurchaseRequest{Quantity: 2, Phone: "1", Address: "a"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.foodRepo.On("GetForUpdateTx", mock.Anything, tx, foodID).Return(food(5), nil).Once()
				f.foodRepo.On("DecrementStockTx", mock.Anything, tx, foodID, int64(2), mock.Anything).Return(false, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrOutOfStock,
		},
		{
			name: "error: InsertOrderTx returns error",
			args: args{
				foodID: foodID,
				buyer:  buyer,
				req:    &model.PurchaseRequest{Quantity: 1, Phone: "1", Address: "a"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.foodRepo.On("GetForUpdateTx", mock.Anything, tx, foodID).Return(food(5), nil).Once()
				f.foodRepo.On("DecrementStockTx", mock.Anything, tx, foodID, int64(1), mock.Anything).Return(true, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.Anything).Return(errors.New("db error")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: contact details longer than the stored columns",
			args: args{
				foodID: foodID,
				buyer:  buyer,
				req:    &model.PurchaseRequest{Quantity: 1, Phone: strings.Repeat("9", 33), Address: strings.Repeat("a", 501)},
			},
			wantErr: true,
			errCode: constant.ErrInvalidFields,
		},
		{
			name: "error: BeginTx returns error",
			args: args{
				foodID: foodID,
				buyer:  buyer,
				req:    &model.PurchaseRequest{Quantity: 1, Phone: "1", Address: "a"},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				txRepo:    txmocks.NewTxRepository(t),
				foodRepo:  foodmocks.NewFoodRepository(t),
				orderRepo: ordermocks.NewOrderRepository(t),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: redismocks.NewRedisRepository(t),
				publisher: rabbitmocks.NewOrderPublisher(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := apporder.NewOrderApp(&config.Config{}, f.txRepo, f.foodRepo, f.orderRepo, f.userRepo, f.cacheRepo, f.publisher)

			got, err := app.Purchase(context.Background(), tt.args.foodID, tt.args.buyer, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Purchase() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestOrderApp_Purchase_CanceledClientStillCommits(t *testing.T) {
	tx := &sqlx.Tx{}
	txRepo := txmocks.NewTxRepository(t)
	foodRepo := foodmocks.NewFoodRepository(t)
	orderRepo := ordermocks.NewOrderRepository(t)
	cacheRepo := redismocks.NewRedisRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	txRepo.On("BeginTx", mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil })).Return(tx, nil).Once()
	foodRepo.On("GetForUpdateTx", mock.Anything, tx, foodID).Return(food(5), nil).Once()
	foodRepo.On("DecrementStockTx", mock.Anything, tx, foodID, int64(1), mock.Anything).
		Run(func(mock.Arguments) { cancel() }).Return(true, nil).Once()
	orderRepo.On("InsertOrderTx", mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), tx, mock.Anything).Return(nil).Once()
	txRepo.On("CommitTx", tx).Return(nil).Once()
	cacheRepo.On("Delete", mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), constant.CacheKeyTopFoods).Return(nil).Once()

	app := apporder.NewOrderApp(&config.Config{}, txRepo, foodRepo, orderRepo, usermocks.NewUserRepository(t), cacheRepo, nil)
	got, err := app.Purchase(ctx, foodID, buyer, &model.PurchaseRequest{Quantity: 1, Phone: "1", Address: "a"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Quantity)
}

// memoryStore backs the concurrency test. Its stock decrement is
// conditional and atomic like the SQL one.
type memoryStore struct {
	mu     sync.Mutex
	food   model.Food
	orders []model.Order
	sold   int64
}

type memoryTx struct{}

func (memoryTx) BeginTx(context.Context) (*sqlx.Tx, error) { return &sqlx.Tx{}, nil }
func (memoryTx) CommitTx(*sqlx.Tx) error                   { return nil }
func (memoryTx) RollbackTx(*sqlx.Tx) error                 { return nil }

type memoryOrders struct{ s *memoryStore }

func (o memoryOrders) InsertOrderTx(_ context.Context, _ *sqlx.Tx, order *model.Order) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	o.s.orders = append(o.s.orders, *order)
	return nil
}

func (o memoryOrders) ListByBuyerEmail(context.Context, string) ([]model.Order, error) {
	return nil, nil
}

func TestOrderApp_Purchase_ConcurrentBuyersNeverOversell(t *testing.T) {
	logger.Set(zap.NewNop())

	const stock = 7
	const buyers = 25

	store := &memoryStore{food: *food(stock)}
	foodRepo := foodmocks.NewFoodRepository(t)
	foodRepo.On("GetForUpdateTx", mock.Anything, mock.Anything, foodID).Return(func(context.Context, *sqlx.Tx, string) (*model.Food, error) {
		store.mu.Lock()
		defer store.mu.Unlock()
		snapshot := store.food
		return &snapshot, nil
	})
	foodRepo.On("DecrementStockTx", mock.Anything, mock.Anything, foodID, mock.Anything, mock.Anything).
		Return(func(_ context.Context, _ *sqlx.Tx, _ string, q int64, at time.Time) (bool, error) {
			store.mu.Lock()
			defer store.mu.Unlock()
			if store.food.Quantity < q {
				return false, nil
			}
			store.food.Quantity -= q
			store.food.PurchaseCount += q
			store.sold += q
			return true, nil
		})
	cacheRepo := redismocks.NewRedisRepository(t)
	cacheRepo.On("Delete", mock.Anything, constant.CacheKeyTopFoods).Return(nil)

	app := apporder.NewOrderApp(&config.Config{}, memoryTx{}, foodRepo, memoryOrders{s: store}, usermocks.NewUserRepository(t), cacheRepo, nil)

	var wg sync.WaitGroup
	results := make(chan error, buyers)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := model.Identity{UID: "u", Name: "buyer", Email: "buyer@foodhive.io"}
			_, err := app.Purchase(context.Background(), foodID, b, &model.PurchaseRequest{
				Quantity: int64(1 + i%2),
				Phone:    "1",
				Address:  "a",
			})
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	for err := range results {
		if err == nil {
			continue
		}
		if !cerr.Is(err, constant.ErrOutOfStock) && !cerr.Is(err, constant.ErrInvalidQuantity) {
			t.Fatalf("unexpected error %v", err)
		}
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	var ordered int64
	for _, o := range store.orders {
		ordered += o.Quantity
	}
	assert.LessOrEqual(t, store.sold, int64(stock))
	assert.Equal(t, store.sold, ordered)
	assert.Equal(t, int64(stock)-store.sold, store.food.Quantity)
	assert.Equal(t, store.sold, store.food.PurchaseCount)
}

func TestOrderApp_ListOrders(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		mockCall func(r *ordermocks.OrderRepository)
		wantLen  int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: own orders",
			mockCall: func(r *ordermocks.OrderRepository) {
				r.On("ListByBuyerEmail", mock.Anything, buyer.Email).Return([]model.Order{{ID: "o-2"}, {ID: "o-1"}}, nil).Once()
			},
			wantLen: 2,
		},
		{
			name:  "success: matching email query, different case",
			email: "BOB@foodhive.io",
			mockCall: func(r *ordermocks.OrderRepository) {
				r.On("ListByBuyerEmail", mock.Anything, buyer.Email).Return(nil, nil).Once()
			},
			wantLen: 0,
		},
		{
			name:    "error: someone else's email",
			email:   "alice@foodhive.io",
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: repository failure",
			mockCall: func(r *ordermocks.OrderRepository) {
				r.On("ListByBuyerEmail", mock.Anything, buyer.Email).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := ordermocks.NewOrderRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(orderRepo)
			}
			app := apporder.NewOrderApp(&config.Config{}, txmocks.NewTxRepository(t), foodmocks.NewFoodRepository(t), orderRepo,
				usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t), nil)

			got, err := app.ListOrders(context.Background(), buyer, tt.email)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListOrders() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			assert.NotNil(t, got.Orders)
			assert.Len(t, got.Orders, tt.wantLen)
		})
	}
}
