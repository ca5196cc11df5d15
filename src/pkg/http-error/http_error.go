package httpError

import "net/http"

// CommonError is the error shape carried inside usecase results. Message is
// filled in by the caller before returning.
type CommonError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{Code: http.StatusBadRequest, Message: "Bad request"}
}

func NewUnauthorized() *CommonError {
	return &CommonError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
}

func NewForbidden() *CommonError {
	return &CommonError{Code: http.StatusForbidden, Message: "Forbidden"}
}

func NewNotFound() *CommonError {
	return &CommonError{Code: http.StatusNotFound, Message: "Not found"}
}

func NewConflict() *CommonError {
	return &CommonError{Code: http.StatusConflict, Message: "Conflict"}
}

func NewInternalServerError() *CommonError {
	return &CommonError{Code: http.StatusInternalServerError, Message: "Internal server error"}
}
