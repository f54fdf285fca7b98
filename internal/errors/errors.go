package errors

import (
	"errors"
	"fmt"
)

// SetupError reports a dataset that could not be opened or decoded.
type SetupError struct {
	Size int
	Path string
	Op   string
	Err  error
}

// Error implements the error interface
func (e *SetupError) Error() string {
	return fmt.Sprintf("setup failed: %s %s (size %d): %v", e.Op, e.Path, e.Size, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

// NewSetupError creates a new SetupError
func NewSetupError(size int, path, op string, err error) *SetupError {
	return &SetupError{Size: size, Path: path, Op: op, Err: err}
}

// OutputError reports a result destination that could not be created or encoded.
type OutputError struct {
	Path string
	Op   string
	Err  error
}

// Error implements the error interface
func (e *OutputError) Error() string {
	return fmt.Sprintf("output failed: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

// NewOutputError creates a new OutputError
func NewOutputError(path, op string, err error) *OutputError {
	return &OutputError{Path: path, Op: op, Err: err}
}

// IsSetupFailure reports whether err wraps a SetupError.
func IsSetupFailure(err error) bool {
	var setupErr *SetupError
	return errors.As(err, &setupErr)
}

// IsOutputFailure reports whether err wraps an OutputError.
func IsOutputFailure(err error) bool {
	var outErr *OutputError
	return errors.As(err, &outErr)
}
