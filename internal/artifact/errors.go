package artifact

import (
	"errors"
	"fmt"
)

// ErrMissingCSRF is returned before any mutating request is attempted
// when the client has no CSRF token configured.
var ErrMissingCSRF = errors.New("artifact: CSRF token not configured")

// ErrNotFound indicates the backend has no record for the requested
// artifact. Callers surface this as a viewer error state rather than
// a toast.
var ErrNotFound = errors.New("artifact: not found")

// APIError carries a non-2xx backend response. Message is the
// backend-supplied detail when the body could be decoded, otherwise
// the raw status text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("artifact: backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("artifact: backend returned %d: %s", e.StatusCode, e.Message)
}

// IsRetryable reports whether the error is worth retrying on the next
// poll tick. Client errors other than 429 are terminal.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == 429 {
			return true
		}
		return apiErr.StatusCode >= 500
	}
	// Transport errors (timeouts, refused connections) are transient.
	return !errors.Is(err, ErrMissingCSRF) && !errors.Is(err, ErrNotFound)
}
