package errs

import (
	"fmt"
	"strings"
)

type HttpError struct {
	Code    int
	Message string
	Data    any
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("code %d: %s, data: %v", e.Code, e.Message, e.Data)
}

// ValidationError carries the accumulated, user-facing field messages of a
// failed inquiry validation pass. Messages co-occur; callers return them all.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
