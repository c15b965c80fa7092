package probe

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is wrapped when a probe was built without its client.
var ErrNotConfigured = errors.New("probe dependency not configured")

// Error reports which component failed its check.
type Error struct {
	Component string
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s probe: %v", e.Component, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func fail(component string, err error) error {
	return &Error{Component: component, Err: err}
}
