package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/foodhive/constant"
	"github.com/muhammadheryan/foodhive/model"
	utilsContext "github.com/muhammadheryan/foodhive/utils/context"
	"github.com/muhammadheryan/foodhive/utils/errors"
)

// UpsertProfile handler
// @Summary Save profile
// @Description Create or update the caller's phone and address
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ProfileRequest true "Profile"
// @Success 200 {object} model.UserProfile
// @Failure 400 {object} ErrorResponse
// @Router /users [post]
func (s *RestHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpsertProfile(r.Context(), identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProfile handler
// @Summary Get profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param uid path string true "User ID, must be the caller's"
// @Success 200 {object} model.UserProfile
// @Failure 403 {object} ErrorResponse
// @Router /users/{uid} [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.UserApp.GetProfile(r.Context(), identity, mux.Vars(r)["uid"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
