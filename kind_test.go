package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_Bounds(t *testing.T) {
	tests := []struct {
		kind     Kind
		name     string
		min, max int
	}{
		{Minute, "minute", 0, 59},
		{Hour, "hour", 0, 23},
		{DayOfMonth, "day of month", 1, 31},
		{Month, "month", 1, 12},
		{DayOfWeek, "day of week", 1, 7},
	}

	for i, tt := range tests {
		assert.Equal(t, tt.kind, Kinds()[i])
		assert.Equal(t, tt.name, tt.kind.String())
		assert.Equal(t, tt.min, tt.kind.Min())
		assert.Equal(t, tt.max, tt.kind.Max())
		assert.LessOrEqual(t, tt.kind.Max(), 63)
	}
}
