package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/foodhive/constant"
	"github.com/muhammadheryan/foodhive/utils/errors"
	"github.com/muhammadheryan/foodhive/utils/logger"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Required []string `json:"required,omitempty"`
	Invalid  []string `json:"invalid,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusOK, body)
}

func writeCreated(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusCreated, body)
}

func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.Error(err))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	res := ErrorResponse{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	}
	switch ce.Type() {
	case constant.ErrMissingFields:
		res.Required = ce.Fields()
	case constant.ErrInvalidFields:
		res.Invalid = ce.Fields()
	}
	writeJSON(w, ce.ErrorHTTPCode(), res)
}

// decodeJSON reads a JSON body into dst. Type mismatches are reported as
// invalid fields, anything else as an invalid request.
func decodeJSON(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) && typeErr.Field != "" {
		return errors.SetFieldError(constant.ErrInvalidFields, []string{typeErr.Field})
	}
	logger.Debug("[decodeJSON] malformed body", zap.Error(err))
	return errors.SetCustomError(constant.ErrInvalidRequest)
}
