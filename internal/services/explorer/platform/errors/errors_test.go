package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("boom")
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{name: "message and cause", err: Error{Kind: KindInvalidInput, Message: "bad year", Err: cause}, want: "bad year: boom"},
		{name: "message only", err: Error{Kind: KindInvalidInput, Message: "bad year"}, want: "bad year"},
		{name: "cause only", err: Error{Kind: KindInvalidInput, Err: cause}, want: "boom"},
		{name: "kind only", err: Error{Kind: KindNotFound}, want: "not_found"},
	}
	for _, tc := range tests {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("%s: Error() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestWrapKeepsCause(t *testing.T) {
	t.Parallel()

	sentinel := stderrors.New("unknown metric")
	err := Wrap(KindInvalidInput, "update map", fmt.Errorf("%w: %q", sentinel, "x"))
	if !stderrors.Is(err, sentinel) {
		t.Fatalf("errors.Is(%v, sentinel) = false", err)
	}
	if Wrap(KindInvalidInput, "noop", nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: http.StatusOK},
		{err: E(KindInvalidInput, "bad"), want: http.StatusBadRequest},
		{err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{err: E(KindUnavailable, "loading"), want: http.StatusServiceUnavailable},
		{err: E(KindUnknown, "oops"), want: http.StatusInternalServerError},
		{err: stderrors.New("plain"), want: http.StatusInternalServerError},
		{err: fmt.Errorf("wrapped: %w", E(KindInvalidInput, "bad")), want: http.StatusBadRequest},
	}
	for _, tc := range tests {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	if got := KindOf(stderrors.New("plain")); got != KindUnknown {
		t.Fatalf("KindOf(plain) = %q, want %q", got, KindUnknown)
	}
	if got := KindOf(Wrap(KindUnavailable, "store", stderrors.New("x"))); got != KindUnavailable {
		t.Fatalf("KindOf(wrapped) = %q, want %q", got, KindUnavailable)
	}
}
