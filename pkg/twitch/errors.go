package twitch

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the Twitch API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twitch api error: status %d: %s", e.StatusCode, e.Message)
}

// AsAPIError unwraps err into an *APIError if possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a 404 from Twitch.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 from Twitch.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// IsForbidden reports whether err is a 403 from Twitch.
func IsForbidden(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusForbidden
}

// IsConflict reports whether err is a 409 from Twitch (subscription already
// exists).
func IsConflict(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusConflict
}

// IsTransient reports whether err is worth retrying: network failures, 429s
// and 5xx responses.
func IsTransient(err error) bool {
	apiErr, ok := AsAPIError(err)
	if !ok {
		// Network-level failure.
		return err != nil
	}
	return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
}
