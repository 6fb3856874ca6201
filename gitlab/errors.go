package gitlab

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigMissing is returned when no access token is configured.
	ErrConfigMissing = errors.New("gitlab: access token not configured")

	// ErrRemoteFetch matches every *FetchError.
	ErrRemoteFetch = errors.New("gitlab: remote fetch failed")
)

// FetchError describes a request that was sent but did not produce a
// usable result.
type FetchError struct {
	// Op names the client operation ("list snippets", "fetch raw snippet").
	Op string

	// URL is the request URL, without credentials.
	URL string

	// StatusCode is the HTTP status when a response arrived, 0 otherwise.
	StatusCode int

	// Err is the underlying cause.
	Err error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gitlab: %s: %s: status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("gitlab: %s: %s: %v", e.Op, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrRemoteFetch) succeed for any FetchError.
func (e *FetchError) Is(target error) bool {
	return target == ErrRemoteFetch
}

// IsConfigMissing reports whether err means the token was not configured.
func IsConfigMissing(err error) bool {
	return errors.Is(err, ErrConfigMissing)
}

// StatusCode extracts the HTTP status from a FetchError anywhere in err's
// chain. Returns 0 when there is none.
func StatusCode(err error) int {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.StatusCode
	}
	return 0
}
