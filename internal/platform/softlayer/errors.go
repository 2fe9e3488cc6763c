package softlayer

import (
	"errors"
	"net/http"

	"github.com/softlayer/softlayer-go/sl"
)

// isTransient reports whether an API error is worth retrying. Server-side
// failures and rate limiting are transient; everything else, including
// authentication and validation exceptions, is fatal.
func isTransient(err error) bool {
	var apiErr sl.Error
	if !errors.As(err, &apiErr) {
		// Transport-level failures (connection reset, DNS) arrive as plain
		// errors and are retried.
		return true
	}
	switch apiErr.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// IsNotFound checks if an error indicates a missing SoftLayer object.
func IsNotFound(err error) bool {
	var apiErr sl.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusNotFound ||
		apiErr.Exception == "SoftLayer_Exception_ObjectNotFound"
}
