package cron

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrTokenCount is returned when a line does not hold five fields and a command.
	ErrTokenCount = errors.New("expected [minute] [hour] [day of month] [month] [day of week] [command]")

	// ErrMalformedNumber is returned when a token is not an integer.
	ErrMalformedNumber = errors.New("invalid number")

	// ErrTooManyIntervals is returned when a wildcard carries more than one step.
	ErrTooManyIntervals = errors.New("too many intervals")

	// ErrZeroStep is returned for a step of 0.
	ErrZeroStep = errors.New("interval is 0")

	// ErrInvertedRange is returned when a range ends before it starts.
	ErrInvertedRange = errors.New("ends before it starts")

	// ErrOutOfBounds is returned when a value falls outside the field's bounds.
	ErrOutOfBounds = errors.New("outside valid range")

	// ErrUnknownKind is returned when ParseField receives a Kind that is not one of the five fields.
	ErrUnknownKind = errors.New("unknown field kind")
)

// FieldError reports why a single field could not be parsed.
type FieldError struct {
	Kind Kind
	// Text is the raw field as it appeared in the expression.
	Text string
	// Token is the offending number for ErrMalformedNumber, empty otherwise.
	Token string
	Err   error
}

func (e *FieldError) Error() string {
	var reason string
	switch e.Err {
	case ErrMalformedNumber:
		reason = fmt.Sprintf("%s %q", e.Err, e.Token)
	case ErrOutOfBounds:
		reason = fmt.Sprintf("%s (%d-%d)", e.Err, e.Kind.Min(), e.Kind.Max())
	default:
		reason = e.Err.Error()
	}
	return fmt.Sprintf("%s field %q: %s", e.Kind, e.Text, reason)
}

// Unwrap returns the sentinel describing the failure.
func (e *FieldError) Unwrap() error { return e.Err }

// Cause implements the github.com/pkg/errors causer interface.
func (e *FieldError) Cause() error { return e.Err }

// ExpressionError is returned when a line cannot be split into fields and a command.
type ExpressionError struct {
	Line   string
	Tokens int
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("%s but got %q (%d tokens)", ErrTokenCount, e.Line, e.Tokens)
}

// Unwrap returns ErrTokenCount.
func (e *ExpressionError) Unwrap() error { return ErrTokenCount }

// Cause implements the github.com/pkg/errors causer interface.
func (e *ExpressionError) Cause() error { return ErrTokenCount }
