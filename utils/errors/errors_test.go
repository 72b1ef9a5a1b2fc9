package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/foodhive/constant"
	cerr "github.com/muhammadheryan/foodhive/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	err := cerr.SetFieldError(constant.ErrMissingFields, []string{"name", "price"})

	assert.Equal(t, "missing required fields", err.Error())
	assert.Equal(t, "0005", err.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, err.ErrorHTTPCode())
	assert.Equal(t, []string{"name", "price"}, err.Fields())
	assert.True(t, cerr.Is(err, constant.ErrMissingFields))
	assert.False(t, cerr.Is(err, constant.ErrInvalidFields))
	assert.False(t, cerr.Is(fmt.Errorf("plain"), constant.ErrMissingFields))
}

func TestCustomError_HTTPCodes(t *testing.T) {
	tests := []struct {
		errType constant.ErrorType
		want    int
	}{
		{constant.ErrNotFound, http.StatusNotFound},
		{constant.ErrForbidden, http.StatusForbidden},
		{constant.ErrOutOfStock, http.StatusConflict},
		{constant.ErrUnauthorize, http.StatusUnauthorized},
		{constant.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cerr.SetCustomError(tt.errType).ErrorHTTPCode(), constant.ErrorTypeMessage[tt.errType])
	}
}
