package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFromErrorPassesThroughAppError(t *testing.T) {
	original := NewValidationError("bad input")
	assert.Same(t, original, FromError(original))
}

func TestFromErrorWrapsUnknownError(t *testing.T) {
	appErr := FromError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
	assert.Equal(t, CodeInternal, appErr.Code)
	assert.Contains(t, appErr.Message, "boom")
}

func TestFromStoreMapsMissingRowToNotFound(t *testing.T) {
	appErr := FromStore(gorm.ErrRecordNotFound, "user not found")
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	assert.Equal(t, CodeNotFound, appErr.Code)
}

func TestFromStoreMapsOtherErrorsToStoreError(t *testing.T) {
	appErr := FromStore(errors.New("connection refused"), "failed to save message")
	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
	assert.Equal(t, CodeStore, appErr.Code)
	assert.Equal(t, "failed to save message", appErr.Message)
	assert.Equal(t, "connection refused", appErr.Details)
}

func TestFromStorePassesThroughAppError(t *testing.T) {
	original := NewConflictError("duplicate")
	assert.Same(t, original, FromStore(original, "ignored"))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(gorm.ErrRecordNotFound))
	assert.True(t, IsNotFound(NewNotFoundError("missing")))
	assert.False(t, IsNotFound(NewStoreError("down")))
	assert.False(t, IsNotFound(nil))
}

func TestIsCode(t *testing.T) {
	assert.True(t, IsCode(NewValidationError("bad"), CodeValidation))
	assert.False(t, IsCode(errors.New("bad"), CodeValidation))
	assert.False(t, IsCode(nil, CodeValidation))
}
