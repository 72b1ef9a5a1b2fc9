package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrMissingFields
	ErrInvalidFields
	ErrInvalidQuantity
	ErrNoChanges
	ErrForbidden
	ErrOutOfStock
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:         "success",
	ErrInternal:        "error internal",
	ErrNotFound:        "food not found or access denied",
	ErrInvalidRequest:  "invalid request",
	ErrUnauthorize:     "unauthorize request",
	ErrMissingFields:   "missing required fields",
	ErrInvalidFields:   "invalid field values",
	ErrInvalidQuantity: "invalid quantity",
	ErrNoChanges:       "no changes made",
	ErrForbidden:       "forbidden",
	ErrOutOfStock:      "not enough stock, please try again",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:         http.StatusOK,
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrUnauthorize:     http.StatusUnauthorized,
	ErrMissingFields:   http.StatusBadRequest,
	ErrInvalidFields:   http.StatusBadRequest,
	ErrInvalidQuantity: http.StatusBadRequest,
	ErrNoChanges:       http.StatusBadRequest,
	ErrForbidden:       http.StatusForbidden,
	ErrOutOfStock:      http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:         "0000",
	ErrInternal:        "0001",
	ErrNotFound:        "0002",
	ErrInvalidRequest:  "0003",
	ErrUnauthorize:     "0004",
	ErrMissingFields:   "0005",
	ErrInvalidFields:   "0006",
	ErrInvalidQuantity: "0007",
	ErrNoChanges:       "0008",
	ErrForbidden:       "0009",
	ErrOutOfStock:      "0010",
}
