package domain

import "errors"

// Sentinel errors used across all layers.
//
// ErrNotFound marks absence of a record. Absence is a normal outcome for
// event handlers (a defined no-op), never a transient failure; callers must
// check it with errors.Is before treating an error as reportable.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
)
