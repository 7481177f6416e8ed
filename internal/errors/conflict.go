package errors

import "net/http"

// Invariant violations are reported as 400s so clients treat them the
// same way as validation failures.

var ErrActiveSprintExists = &Exception{
	Message:    "another sprint is already active in this project",
	StatusCode: http.StatusBadRequest,
}

var ErrSprintAlreadyActive = &Exception{
	Message:    "sprint is already active",
	StatusCode: http.StatusBadRequest,
}

var ErrSprintNotActive = &Exception{
	Message:    "sprint is not active",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidMoveTarget = &Exception{
	Message:    "target sprint must be a pending sprint in the same project",
	StatusCode: http.StatusBadRequest,
}

var ErrLastColumnForStatus = &Exception{
	Message:    "cannot delete the last column for this status",
	StatusCode: http.StatusBadRequest,
}
