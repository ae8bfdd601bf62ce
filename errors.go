// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpart

import (
	"errors"
	"fmt"

	"github.com/creachadair/jpart/decode"
)

// Reasons for a hard parse failure. A *DecodeError reports one of these when
// the failure was detected while recovering a truncated value.
var (
	ErrUnexpectedToken  = errors.New("unexpected token")
	ErrMissingColon     = errors.New("missing colon after object key")
	ErrMissingSeparator = errors.New("missing separator")
	ErrBadNumber        = errors.New("invalid number")
	ErrBadLiteral       = errors.New("invalid literal")
	ErrBadString        = errors.New("invalid string")
	ErrTooDeep          = decode.ErrTooDeep
)

// DecodeError is the concrete type of errors reported by a Parser for input
// that cannot be parsed even as a truncated document.
type DecodeError struct {
	Message  string         // human-readable description
	Input    string         // the complete input to the failed call
	Offset   int            // approximate byte offset of the error in Input
	Location decode.LineCol // line and column of Offset

	reason error // the recovery failure, if any
	cause  error // the full decoder failure
}

// Error satisfies the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Location, e.Message)
}

// Unwrap supports error wrapping. Both the reason for the failure and the
// error from the complete-document decoder are reported.
func (e *DecodeError) Unwrap() []error {
	var errs []error
	if e.reason != nil {
		errs = append(errs, e.reason)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}
