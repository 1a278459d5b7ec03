package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb: conditional check failed")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if appErr.Error() != "An internal error occurred: dynamodb: conditional check failed" {
		t.Fatalf("unexpected error string: %q", appErr.Error())
	}
	if !errors.Is(appErr, cause) {
		t.Fatal("expected Unwrap to expose the cause")
	}

	httpErr := appErr.ToHTTPError()
	if httpErr.Code != "INTERNAL_ERROR" || httpErr.Message != "An internal error occurred" {
		t.Fatalf("unexpected http error: %+v", httpErr)
	}
}

func TestAppError_Simple(t *testing.T) {
	appErr := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)

	if appErr.Error() != "Quote not found" {
		t.Fatalf("unexpected error string: %q", appErr.Error())
	}
	if appErr.Unwrap() != nil {
		t.Fatal("expected no cause")
	}
	if appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", appErr.HTTPStatus)
	}
}
