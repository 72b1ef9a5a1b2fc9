package errors

import "github.com/muhammadheryan/foodhive/constant"

type CustomError struct {
	errType constant.ErrorType
	fields  []string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Fields lists the request fields the error refers to, if any.
func (c CustomError) Fields() []string {
	return c.fields
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func SetFieldError(errorType constant.ErrorType, fields []string) CustomError {
	return CustomError{
		errType: errorType,
		fields:  fields,
	}
}

// Is reports whether err is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	ce, ok := err.(CustomError)
	return ok && ce.errType == errorType
}
