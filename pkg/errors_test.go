package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dial timeout")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected Unwrap to expose the cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: dial timeout" {
		t.Fatalf("unexpected error string: %q", e.Error())
	}

	env := e.ToHTTPError()
	if env.Success {
		t.Fatalf("expected success=false")
	}
	if env.Message != "An internal error occurred" {
		t.Fatalf("internal cause leaked: %q", env.Message)
	}
}

func TestAppErrorSimple(t *testing.T) {
	e := NewDomainErrorSimple("JOB_ORDER_NOT_FOUND", "Job order not found", http.StatusNotFound)
	if e.Error() != "JOB_ORDER_NOT_FOUND: Job order not found" {
		t.Fatalf("unexpected error string: %q", e.Error())
	}
	if e.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", e.HTTPStatus)
	}
}
