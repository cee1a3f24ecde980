package service

import "errors"

// Error kinds. Every error returned by a service is either one of these (via
// errors.Is) or an unexpected failure from the store.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

// Error carries a caller-facing message alongside its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

var (
	ErrProgramNameRequired  = &Error{Kind: ErrValidation, Message: "Program name required"}
	ErrClientFieldsRequired = &Error{Kind: ErrValidation, Message: "Name and email are required"}
	ErrEmailRequired        = &Error{Kind: ErrValidation, Message: "Email is required"}

	ErrProgramExists = &Error{Kind: ErrConflict, Message: "Program already exists"}
	ErrClientExists  = &Error{Kind: ErrConflict, Message: "Client already exists"}

	ErrProgramNotFound = &Error{Kind: ErrNotFound, Message: "Program not found"}
	ErrClientNotFound  = &Error{Kind: ErrNotFound, Message: "Client not found"}
)
