package errors

import "net/http"

var ErrInvalidTransition = &Exception{
	Message:    "illegal status transition",
	StatusCode: http.StatusBadRequest,
}
