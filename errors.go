package shortcrypt

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrInvalidBase is returned by Decrypt when the supplied base exceeds 31.
	ErrInvalidBase = errors.New("shortcrypt: base exceeds 31")

	// ErrMalformed is returned by transport decoders when the supplied text
	// cannot carry a valid cipher: it is empty, it contains a non-ASCII byte
	// (QR transport), its base character decodes to a value above 31, or the
	// remaining body fails codec decoding.
	ErrMalformed = errors.New("shortcrypt: malformed transport text")
)

// InvalidBaseError reports a base nibble outside the valid [0, 31] range.
type InvalidBaseError struct {
	Base byte // the out-of-range value supplied
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("shortcrypt: invalid base %d, must be in [0, 31]", e.Base)
}

func (e *InvalidBaseError) Unwrap() error {
	return ErrInvalidBase
}

// MalformedError reports why a transport text could not be decoded.
type MalformedError struct {
	Reason string // human-readable cause
	Err    error  // underlying codec error, if any
}

func (e *MalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("shortcrypt: malformed text: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("shortcrypt: malformed text: %s", e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the ErrMalformed sentinel, so that
// errors.Is(err, ErrMalformed) succeeds regardless of the wrapped cause.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

func newMalformedError(reason string, err error) error {
	return &MalformedError{Reason: reason, Err: err}
}

// IsInvalidBaseError reports whether err is (or wraps) an *InvalidBaseError.
func IsInvalidBaseError(err error) bool {
	var ibe *InvalidBaseError
	return errors.As(err, &ibe)
}

// IsMalformedError reports whether err is (or wraps) a *MalformedError.
func IsMalformedError(err error) bool {
	var me *MalformedError
	return errors.As(err, &me)
}
