package shortcrypt

import (
	"errors"
	"testing"
)

func TestInvalidBaseErrorMessage(t *testing.T) {
	err := &InvalidBaseError{Base: 40}
	want := "shortcrypt: invalid base 40, must be in [0, 31]"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidBase) {
		t.Error("errors.Is(err, ErrInvalidBase) = false")
	}
}

func TestMalformedErrorIsSentinelRegardlessOfCause(t *testing.T) {
	wrapped := errors.New("bad base32 input")
	err := newMalformedError("body codec decode failed", wrapped)

	if !errors.Is(err, ErrMalformed) {
		t.Error("errors.Is(err, ErrMalformed) = false with a wrapped cause present")
	}
	if !errors.Is(err, wrapped) {
		t.Error("errors.Is(err, wrapped) = false, Unwrap should expose the original cause")
	}

	bare := newMalformedError("empty transport text", nil)
	if !errors.Is(bare, ErrMalformed) {
		t.Error("errors.Is(bare, ErrMalformed) = false with no wrapped cause")
	}
}

func TestIsMalformedAndInvalidBaseHelpers(t *testing.T) {
	me := newMalformedError("x", nil)
	if !IsMalformedError(me) {
		t.Error("IsMalformedError = false for a *MalformedError")
	}
	if IsInvalidBaseError(me) {
		t.Error("IsInvalidBaseError = true for a *MalformedError")
	}

	ibe := &InvalidBaseError{Base: 99}
	if !IsInvalidBaseError(ibe) {
		t.Error("IsInvalidBaseError = false for an *InvalidBaseError")
	}
	if IsMalformedError(ibe) {
		t.Error("IsMalformedError = true for an *InvalidBaseError")
	}
}
