package apperror

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

// AppError is an error that carries the HTTP status it is answered with.
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError names one rejected form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Bill editor errors. Compare with errors.Is.
var (
	ErrBillNotFound = &AppError{Code: http.StatusNotFound, Message: "Bill not found"}
	ErrItemNotFound = &AppError{Code: http.StatusNotFound, Message: "Item not found"}
	ErrBadBillID    = &AppError{Code: http.StatusBadRequest, Message: "Invalid bill ID"}
	ErrBadItemIndex = &AppError{Code: http.StatusBadRequest, Message: "Invalid item index"}
)

// UnknownItemField rejects an item edit naming a field a row does not have.
func UnknownItemField(field string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Unknown item field: " + field,
		Errors:  []FieldError{{Field: field, Message: "unknown item field"}},
	}
}

// UnknownStoreFields rejects a store details edit. Every unknown key gets its
// own FieldError, sorted by key, listing the accepted keys.
func UnknownStoreFields(keys []string, allowed []string) *AppError {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	hint := "unknown store field, expected one of " + strings.Join(allowed, ", ")
	fieldErrors := make([]FieldError, len(sorted))
	for i, k := range sorted {
		fieldErrors[i] = FieldError{Field: k, Message: hint}
	}
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// GetAppError converts an error to AppError. Anything that is not one is an
// internal error.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
