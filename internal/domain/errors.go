package domain

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("conflict")
	ErrPlanInvalid         = errors.New("allocation plan invalid")
	ErrIdempotencyConflict = errors.New("idempotency conflict")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)
