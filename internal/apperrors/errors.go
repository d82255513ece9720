package apperrors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeNotFound     ErrorType = "NOT_FOUND"
	ErrTypeInvalidInput ErrorType = "INVALID_INPUT"
	ErrTypeStorage      ErrorType = "STORAGE"
)

// DomainError is the error shape every service returns; handlers map
// Type to an HTTP status and never leak the wrapped error to clients.
type DomainError struct {
	Type    ErrorType
	Message string
	// Fields carries per-field validation issues for INVALID_INPUT.
	Fields []string
	Err    error
	Stack  []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func NotFound(message string) *DomainError {
	return New(ErrTypeNotFound, message, nil)
}

func InvalidInput(message string, fields ...string) *DomainError {
	e := New(ErrTypeInvalidInput, message, nil)
	e.Fields = fields
	return e
}

func Storage(message string, err error) *DomainError {
	return New(ErrTypeStorage, message, err)
}

// IsNotFound reports whether err is a NOT_FOUND domain error.
func IsNotFound(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Type == ErrTypeNotFound
}

// IsInvalidInput reports whether err is an INVALID_INPUT domain error.
func IsInvalidInput(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Type == ErrTypeInvalidInput
}
