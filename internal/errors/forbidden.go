package errors

import "net/http"

var ErrForbidden = &Exception{
	Message:    "not a member of this project",
	StatusCode: http.StatusForbidden,
}
