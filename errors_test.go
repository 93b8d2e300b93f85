package cron

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFieldError_Cause(t *testing.T) {
	_, err := ParseField("*/0", Minute)
	assert.Equal(t, ErrZeroStep, errors.Cause(err))

	wrapped := errors.Wrap(err, "context")
	assert.Equal(t, ErrZeroStep, errors.Cause(wrapped))
	assert.True(t, errors.Is(wrapped, ErrZeroStep))
}

func TestFieldError_Message(t *testing.T) {
	tests := []struct {
		err  *FieldError
		want string
	}{
		{
			&FieldError{Kind: Hour, Text: "1,24", Err: ErrOutOfBounds},
			`hour field "1,24": outside valid range (0-23)`,
		},
		{
			&FieldError{Kind: DayOfMonth, Text: "*/A", Token: "A", Err: ErrMalformedNumber},
			`day of month field "*/A": invalid number "A"`,
		},
		{
			&FieldError{Kind: Month, Text: "*/10/10", Err: ErrTooManyIntervals},
			`month field "*/10/10": too many intervals`,
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestExpressionError_Cause(t *testing.T) {
	_, err := Parse("* *")
	assert.Equal(t, ErrTokenCount, errors.Cause(err))
	assert.EqualError(t, err, `expected [minute] [hour] [day of month] [month] [day of week] [command] but got "* *" (2 tokens)`)
}
