package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: http.StatusOK},
		{err: E(KindInvalidInput, "bad"), want: http.StatusBadRequest},
		{err: E(KindUnavailable, "unavailable"), want: http.StatusServiceUnavailable},
		{err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{err: E(KindUnknown, "unknown"), want: http.StatusInternalServerError},
		{err: fmt.Errorf("wrap: %w", E(KindNotFound, "missing")), want: http.StatusNotFound},
	}
	for _, tc := range tests {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestHTTPStatusDefaultsToInternalError(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindNotFound}
	if got := err.Error(); got != string(KindNotFound) {
		t.Fatalf("Error() = %q, want %q", got, string(KindNotFound))
	}
}

func TestFieldKey(t *testing.T) {
	t.Parallel()

	if got := FieldKey(EK(KindInvalidInput, " email ", "Enter a valid email")); got != "email" {
		t.Fatalf("FieldKey() = %q, want %q", got, "email")
	}
	if got := FieldKey(errors.New("plain")); got != "" {
		t.Fatalf("FieldKey(plain) = %q, want empty", got)
	}
	if got := FieldKey(nil); got != "" {
		t.Fatalf("FieldKey(nil) = %q, want empty", got)
	}
}
