package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func performFail(t *testing.T, err error) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	Fail(c, err)

	var body APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return w, body
}

func TestFailMapsKindsToStatuses(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{AuthError("Token tidak valid"), http.StatusUnauthorized},
		{ForbiddenError("Akses terbatas untuk dosen"), http.StatusForbidden},
		{ValidationError(FieldError{Field: "title", Message: "Title is required"}), http.StatusBadRequest},
		{FileError("File too large"), http.StatusBadRequest},
		{NotFoundError("Thesis submission not found"), http.StatusNotFound},
	}

	for _, tc := range cases {
		w, body := performFail(t, tc.err)
		if w.Code != tc.status {
			t.Fatalf("expected status %d for %v, got %d", tc.status, tc.err, w.Code)
		}
		if body.Success {
			t.Fatalf("expected success=false for %v", tc.err)
		}
	}
}

func TestFailHidesInternalCause(t *testing.T) {
	w, body := performFail(t, InternalError("Failed to fetch thesis submission", errors.New("dial tcp: connection refused")))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if body.Message != "Internal server error" {
		t.Fatalf("expected generic message, got %q", body.Message)
	}
}

func TestFailWrapsUnknownErrors(t *testing.T) {
	w, _ := performFail(t, errors.New("boom"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestValidationErrorSingleFieldSurfacesMessage(t *testing.T) {
	err := ValidationError(FieldError{Field: "approval_date", Message: "Approval date is required"})
	if err.Message != "Approval date is required" {
		t.Fatalf("unexpected message: %s", err.Message)
	}

	multi := ValidationError(
		FieldError{Field: "title", Message: "Title is required"},
		FieldError{Field: "methodology", Message: "Methodology is required"},
	)
	if multi.Message != "Validation error" {
		t.Fatalf("unexpected message: %s", multi.Message)
	}
	if len(multi.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(multi.Fields))
	}
}
