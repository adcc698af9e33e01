package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	// ErrInvalidArgument is a validation failure on a numeric range.
	ErrInvalidArgument        = fmt.Errorf("%w: invalid argument", ErrValidation)
	ErrNotFound               = errors.New("not found")
	ErrForbidden              = errors.New("forbidden")
	ErrStorage                = errors.New("blob storage failed")
	ErrPersistence            = errors.New("persistence failed")
	ErrTrackingIncomplete     = fmt.Errorf("%w: daily tracking not updated", ErrPersistence)
	ErrInvalidStateTransition = errors.New("invalid state transition")
	// ErrExtraction never leaves the scanner.
	ErrExtraction = errors.New("extraction failed")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
