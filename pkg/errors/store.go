package errors

import (
	"errors"

	"gorm.io/gorm"
)

// FromStore maps a persistence-layer error onto the service taxonomy.
// Missing rows become NOT_FOUND; everything else (constraint violations,
// connectivity loss, transaction conflicts) is a STORE_ERROR. GORM has
// already rolled back the failed transaction by the time this runs, so a
// STORE_ERROR always means nothing was persisted.
func FromStore(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError(message)
	}

	return NewStoreError(message).WithDetails(err.Error())
}

// IsNotFound reports whether err represents a missing record, either as an
// AppError or as the raw GORM sentinel.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true
	}
	return IsCode(err, CodeNotFound)
}
