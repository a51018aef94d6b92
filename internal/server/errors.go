package server

import (
	"fmt"
)

// ErrBadRequestBody indicates the inbound body could not be read or is not JSON
type ErrBadRequestBody struct {
	Cause error
}

func (e *ErrBadRequestBody) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid request body: %v", e.Cause)
	}
	return "invalid request body"
}

func (e *ErrBadRequestBody) Unwrap() error {
	return e.Cause
}
