package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/foodhive/constant"
	"github.com/muhammadheryan/foodhive/model"
	utilsContext "github.com/muhammadheryan/foodhive/utils/context"
	"github.com/muhammadheryan/foodhive/utils/errors"
)

// Purchase handler
// @Summary Purchase food
// @Description Buy units of a listing; stock is decremented atomically
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Food ID"
// @Param request body model.PurchaseRequest true "Purchase"
// @Success 201 {object} model.PurchaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /food/{id}/purchase [post]
func (s *RestHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	identity, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.PurchaseRequest
	if err := decodeJSON(r, &req); err != nil {
		if errors.Is(err, constant.ErrInvalidFields) {
			err = errors.SetCustomError(constant.ErrInvalidQuantity)
		}
		writeError(w, err)
		return
	}

	order, err := s.OrderApp.Purchase(r.Context(), mux.Vars(r)["id"], identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, model.PurchaseResponse{Message: "purchase successful", Order: order})
}

// ListOrders handler
// @Summary List my orders
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param email query string false "Must match the caller's email"
// @Success 200 {object} model.OrderListResponse
// @Failure 403 {object} ErrorResponse
// @Router /orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	identity, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.OrderApp.ListOrders(r.Context(), identity, r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
