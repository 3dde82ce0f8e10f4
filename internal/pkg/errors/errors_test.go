package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	err := NotFound(CodeSpecimenNotFound, "specimen smp-1 not found")
	want := "SPECIMEN_NOT_FOUND: specimen smp-1 not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := Wrap(fmt.Errorf("pq: broken"), "INTERNAL_ERROR", "query failed", http.StatusInternalServerError)
	if wrapped.Unwrap() == nil {
		t.Error("Unwrap() = nil, want wrapped error")
	}
}

func TestConstructorsStatus(t *testing.T) {
	testCases := []struct {
		name string
		err  *AppError
		want int
	}{
		{"not found", NotFound("X", "x"), http.StatusNotFound},
		{"bad request", BadRequest("X", "x"), http.StatusBadRequest},
		{"conflict", Conflict("X", "x"), http.StatusConflict},
		{"internal", Internal("X", "x"), http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.HTTPStatus != tc.want {
				t.Errorf("HTTPStatus = %d, want %d", tc.err.HTTPStatus, tc.want)
			}
		})
	}
}

func TestIsAppError(t *testing.T) {
	appErr := Conflict(CodeStillReferenced, "still referenced")
	wrapped := fmt.Errorf("outer: %w", appErr)

	got, ok := IsAppError(wrapped)
	if !ok {
		t.Fatal("IsAppError(wrapped) = false, want true")
	}
	if got.Code != CodeStillReferenced {
		t.Errorf("code = %q, want %q", got.Code, CodeStillReferenced)
	}

	if _, ok := IsAppError(fmt.Errorf("plain")); ok {
		t.Error("IsAppError(plain) = true, want false")
	}
}

func TestWithFieldErrorsAndParams(t *testing.T) {
	err := BadRequest(CodeValidationFailed, "bad payload").
		WithFieldErrors([]FieldError{{Field: "height", Code: CodeOutOfRange}}).
		WithParams(map[string]interface{}{"hint": "see docs"})

	if len(err.FieldErrors) != 1 || err.FieldErrors[0].Field != "height" {
		t.Errorf("FieldErrors = %v, want one entry for height", err.FieldErrors)
	}
	if err.Params["hint"] != "see docs" {
		t.Errorf("Params = %v, want hint", err.Params)
	}

	// Empty attachments leave the error unchanged.
	plain := BadRequest(CodeValidationFailed, "bad payload").WithFieldErrors(nil).WithParams(nil)
	if plain.FieldErrors != nil || plain.Params != nil {
		t.Error("empty attachments should be no-ops")
	}
}
