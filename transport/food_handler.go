package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/foodhive/constant"
	"github.com/muhammadheryan/foodhive/model"
	utilsContext "github.com/muhammadheryan/foodhive/utils/context"
	"github.com/muhammadheryan/foodhive/utils/errors"
)

// ListFoods handler
// @Summary List foods
// @Description Paginated catalog of available foods with optional category, search and sort
// @Tags Foods
// @Produce json
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 20, max 100"
// @Param category query string false "Category, 'all' for every category"
// @Param search query string false "Matches name, ingredients or description"
// @Param sortBy query string false "dateAdded, createdAt, updatedAt, price, name, quantity or purchaseCount"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} model.FoodListResponse
// @Failure 500 {object} ErrorResponse
// @Router /foods [get]
func (s *RestHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := s.FoodApp.ListFoods(r.Context(), &model.FoodFilter{
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
		Category:  q.Get("category"),
		Search:    q.Get("search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetFood handler
// @Summary Get food
// @Tags Foods
// @Produce json
// @Param id path string true "Food ID"
// @Success 200 {object} model.Food
// @Failure 404 {object} ErrorResponse
// @Router /foods/{id} [get]
func (s *RestHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	res, err := s.FoodApp.GetFood(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListCategories handler
// @Summary List categories
// @Tags Foods
// @Produce json
// @Success 200 {array} string
// @Router /categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.FoodApp.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if res == nil {
		res = []string{}
	}
	writeSuccess(w, res)
}

// TopFoods handler
// @Summary Best selling foods
// @Tags Foods
// @Produce json
// @Success 200 {array} model.Food
// @Router /top-six-food [get]
func (s *RestHandler) TopFoods(w http.ResponseWriter, r *http.Request) {
	res, err := s.FoodApp.TopFoods(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if res == nil {
		res = []model.Food{}
	}
	writeSuccess(w, res)
}

// CreateFood handler
// @Summary Create food
// @Description Publish a new listing owned by the caller
// @Tags Foods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateFoodRequest true "Food"
// @Success 201 {object} model.FoodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /foods [post]
func (s *RestHandler) CreateFood(w http.ResponseWriter, r *http.Request) {
	identity, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateFoodRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	food, err := s.FoodApp.CreateFood(r.Context(), identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, model.FoodResponse{Message: "food added successfully", Food: food})
}

// ListMyFoods handler
// @Summary List my foods
// @Tags Foods
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 10"
// @Success 200 {object} model.FoodListResponse
// @Failure 401 {object} ErrorResponse
// @Router /my-foods [get]
func (s *RestHandler) ListMyFoods(w http.ResponseWriter, r *http.Request) {
	identity, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.FoodApp.ListMyFoods(r.Context(), identity, queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateFood handler
// @Summary Update food
// @Description Partial update of a listing owned by the caller
// @Tags Foods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Food ID"
// @Param request body model.UpdateFoodRequest true "Changed fields"
// @Success 200 {object} model.FoodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /foods/{id} [put]
func (s *RestHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	identity, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateFoodRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	food, err := s.FoodApp.UpdateFood(r.Context(), mux.Vars(r)["id"], identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.FoodResponse{Message: "food updated successfully", Food: food})
}

// DeleteFood handler
// @Summary Delete food
// @Tags Foods
// @Produce json
// @Security BearerAuth
// @Param id path string true "Food ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /foods/{id} [delete]
func (s *RestHandler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	identity, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.FoodApp.DeleteFood(r.Context(), mux.Vars(r)["id"], identity); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, MessageResponse{Message: "food deleted successfully"})
}

// queryInt returns 0 for absent or non-numeric values so the app applies defaults.
func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}
