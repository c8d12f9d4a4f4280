package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map these
// to HTTP statuses with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("conflict")
	ErrForeignKey = errors.New("parent record not found")
)
