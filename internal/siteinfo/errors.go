package siteinfo

import (
	"errors"
	"fmt"
)

// Fetch errors. Returned errors wrap exactly one of these.
var (
	// ErrUnreachable is returned when the request cannot be built or sent,
	// times out, answers with a non-200 status, or its body cannot be read
	// in full within the size limit.
	ErrUnreachable = errors.New("siteinfo endpoint unreachable")

	// ErrInvalidJSON is returned when the response body is not valid JSON.
	ErrInvalidJSON = errors.New("siteinfo response is not valid JSON")

	// ErrMissingFields is returned when the JSON is valid but does not
	// contain query.general and query.extensions.
	ErrMissingFields = errors.New("siteinfo response lacks query.general or query.extensions")

	// ErrUnsupportedProxy is returned by NewHTTPClient for proxy URLs whose
	// scheme is not http, https, socks5 or socks5h.
	ErrUnsupportedProxy = errors.New("unsupported proxy scheme")
)

// FetchError associates a fetch failure with the URL that caused it.
type FetchError struct {
	// URL is the base URL that was being fetched.
	URL string

	// Err wraps one of ErrUnreachable, ErrInvalidJSON or ErrMissingFields.
	Err error
}

// Error implements error.
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Kind returns the sentinel the error wraps, or nil if it wraps none.
func Kind(err error) error {
	for _, sentinel := range []error{ErrUnreachable, ErrInvalidJSON, ErrMissingFields} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return nil
}
