package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrNotFound means the requested index or source does not exist
	ErrNotFound = goerr.New("not found")

	// ErrUnavailable means the backing source cannot be read right now, including timeout
	ErrUnavailable = goerr.New("unavailable")

	// ErrMalformedRequest means a payload does not decode to the declared message shape
	ErrMalformedRequest = goerr.New("malformed request")

	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
)
