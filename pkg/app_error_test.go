package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected message: %s", e.Error())
	}

	base := NewDomainErrorSimple("VALIDATION_FAILED", "Validation failed", http.StatusBadRequest)
	withDetails := base.WithDetails(map[string]any{"field": "quantity"})
	if base.Details != nil {
		t.Fatalf("WithDetails must not mutate the receiver")
	}
	body := withDetails.ToHTTPError()
	if body.Code != "VALIDATION_FAILED" || body.Details["field"] != "quantity" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
