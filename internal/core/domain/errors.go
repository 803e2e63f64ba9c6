package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a referenced ID absent from inventory or cart.
	ErrNotFound = errors.New("item not found")

	// ErrValidation reports a rejected operation argument, such as a
	// non-positive amount.
	ErrValidation = errors.New("invalid argument")
)

// RemoteError reports a failed remote call: a non-success response or a
// transport failure. Status is the HTTP status code, or 0 when the request
// never produced a response.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("remote call failed: %s", e.Message)
	}
	return fmt.Sprintf("remote call failed: status %d: %s", e.Status, e.Message)
}
