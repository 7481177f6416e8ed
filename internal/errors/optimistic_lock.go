package errors

import "net/http"

// Concurrent-modification failures are reported as 400s like every
// other invariant conflict; the client retries with fresh state.
var ErrOptimisticLock = &Exception{
	Message:    "the record was modified concurrently, retry the operation",
	StatusCode: http.StatusBadRequest,
}
