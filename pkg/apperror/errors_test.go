package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAppError_Unwraps(t *testing.T) {
	err := fmt.Errorf("loading bill: %w", ErrBillNotFound)

	assert.ErrorIs(t, err, ErrBillNotFound)
	appErr := GetAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "Bill not found", appErr.Message)
}

func TestGetAppError_PlainErrorIsInternal(t *testing.T) {
	appErr := GetAppError(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "boom", appErr.Message)
}

func TestUnknownItemField(t *testing.T) {
	err := UnknownItemField("colour")

	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, "Unknown item field: colour", err.Message)
	require.Len(t, err.Errors, 1)
	assert.Equal(t, "colour", err.Errors[0].Field)
}

func TestUnknownStoreFields_SortedWithHint(t *testing.T) {
	keys := []string{"zeta", "alpha"}
	err := UnknownStoreFields(keys, []string{"storeName", "dlNumber"})

	assert.Equal(t, http.StatusUnprocessableEntity, err.Code)
	require.Len(t, err.Errors, 2)
	assert.Equal(t, "alpha", err.Errors[0].Field)
	assert.Equal(t, "zeta", err.Errors[1].Field)
	assert.Contains(t, err.Errors[0].Message, "storeName, dlNumber")
	assert.Equal(t, []string{"zeta", "alpha"}, keys, "caller slice untouched")
}
