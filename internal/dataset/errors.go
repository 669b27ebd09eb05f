package dataset

import (
	"errors"
	"fmt"
)

// NetworkError reports that a dataset could not be fetched: the endpoint
// was unreachable, the request timed out or was cancelled, or the server
// answered with a non-2xx status (StatusCode is then non-zero).
type NetworkError struct {
	Dataset    Dataset
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching %s dataset from %s: %v", e.Dataset, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports that a fetched body is not a valid CSV document.
type ParseError struct {
	Dataset Dataset
	URL     string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s dataset from %s: %v", e.Dataset, e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsNetworkError reports whether err is or wraps a *NetworkError.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
