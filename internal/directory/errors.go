package directory

import "errors"

var (
	// ErrLoadFailure covers transport, status and JSON parse failures of the
	// collaborator fetch.
	ErrLoadFailure = errors.New("load users failed")
	// ErrDecodeFailure is returned when a parsed response does not match the
	// expected user shape.
	ErrDecodeFailure = errors.New("decode users failed")
)
