package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFromHTTPStatus(t *testing.T) {
	cases := []struct {
		status int
		want   Kind
	}{
		{http.StatusNotFound, KindNotFound},
		{http.StatusUnauthorized, KindUnauthorized},
		{http.StatusForbidden, KindUpstream},
		{http.StatusInternalServerError, KindUpstream},
		{http.StatusTooManyRequests, KindUpstream},
	}

	for _, tc := range cases {
		if got := FromHTTPStatus(tc.status); got != tc.want {
			t.Errorf("FromHTTPStatus(%d) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestGetKindUnwrapsChains(t *testing.T) {
	base := NotFound("no identity").WithOp("skipengine.send")
	wrapped := fmt.Errorf("lookup: %w", base)

	if !Is(wrapped, KindNotFound) {
		t.Fatalf("expected wrapped error to keep kind not_found, got %v", GetKind(wrapped))
	}
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Fatal("expected plain error to be unknown")
	}
}

func TestErrorMessageIncludesOpAndCause(t *testing.T) {
	err := Wrap(KindTransport, "request failed", errors.New("dial tcp: refused")).WithOp("skipengine.send")

	want := "skipengine.send: request failed: dial tcp: refused"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
	if err.Kind.String() != "transport" {
		t.Fatalf("expected kind string transport, got %q", err.Kind.String())
	}
}
