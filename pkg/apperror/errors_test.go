package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatching(t *testing.T) {
	err := NewInvalidLineItem("bad quantity")

	assert.True(t, IsKind(err, KindInvalidLineItem))
	assert.False(t, IsKind(err, KindRenderFailure))
	assert.Equal(t, http.StatusUnprocessableEntity, err.Code)
}

func TestKindMatchingThroughWrapping(t *testing.T) {
	err := fmt.Errorf("batch: %w", NewMissingBillIdentifier("row 3 has no bill_id"))

	assert.True(t, IsKind(err, KindMissingBillIdentifier))
	assert.True(t, IsAppError(err))
}

func TestRenderFailureWrapsCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewRenderFailure(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, http.StatusInternalServerError, err.Code)
}

func TestGetAppErrorFallback(t *testing.T) {
	appErr := GetAppError(errors.New("plain"))

	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "plain", appErr.Message)
}
