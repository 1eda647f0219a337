package footballdata

import (
	"fmt"
	"net/http"

	crerr "github.com/cockroachdb/errors"
)

// ErrNetwork marks transport-level failures: the request never produced an
// HTTP response.
var ErrNetwork = crerr.New("upstream network failure")

// ErrRateLimited marks a 429 whose single permitted retry also failed.
var ErrRateLimited = crerr.New("upstream rate limit exceeded")

// APIError is any non-2xx upstream response outside the rate-limit retry
// path.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream status=%d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream status=%d", e.Status)
}

func newAPIError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}
	return &APIError{Status: status, Message: message}
}

// IsNotFound reports whether err is an upstream 404. Cup competitions
// legitimately lack standings, teams or scorers, so callers map this to an
// empty result instead of propagating.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if crerr.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}
	return false
}

// IsRateLimited reports whether err is the post-retry rate limit failure.
func IsRateLimited(err error) bool {
	return crerr.Is(err, ErrRateLimited)
}

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool {
	return crerr.Is(err, ErrNetwork)
}
