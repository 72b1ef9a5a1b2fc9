package transport

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	foodapp "github.com/muhammadheryan/foodhive/application/food"
	orderapp "github.com/muhammadheryan/foodhive/application/order"
	userapp "github.com/muhammadheryan/foodhive/application/user"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	FoodApp  foodapp.FoodApp
	OrderApp orderapp.OrderApp
	UserApp  userapp.UserApp
}

func NewTransport(requestTimeout time.Duration, FoodApp foodapp.FoodApp, OrderApp orderapp.OrderApp, UserApp userapp.UserApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		FoodApp:  FoodApp,
		OrderApp: OrderApp,
		UserApp:  UserApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// catalog, public reads
	mux.HandleFunc("/foods", rh.ListFoods).Methods(http.MethodGet)
	mux.HandleFunc("/foods/{id}", rh.GetFood).Methods(http.MethodGet)
	mux.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	mux.HandleFunc("/top-six-food", rh.TopFoods).Methods(http.MethodGet)

	// listings
	mux.HandleFunc("/foods", rh.CreateFood).Methods(http.MethodPost)
	mux.HandleFunc("/my-foods", rh.ListMyFoods).Methods(http.MethodGet)
	mux.HandleFunc("/foods/{id}", rh.UpdateFood).Methods(http.MethodPut)
	mux.HandleFunc("/foods/{id}", rh.DeleteFood).Methods(http.MethodDelete)

	// purchases
	mux.HandleFunc("/food/{id}/purchase", rh.Purchase).Methods(http.MethodPost)
	mux.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)

	// profiles
	mux.HandleFunc("/users", rh.UpsertProfile).Methods(http.MethodPost)
	mux.HandleFunc("/users", rh.GetProfile).Methods(http.MethodGet)
	mux.HandleFunc("/users/{uid}", rh.GetProfile).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(TimeoutMiddleware(requestTimeout))
	mux.Use(AuthMiddleware(UserApp))

	return mux
}
