package cron

import (
	"math/bits"
	"strconv"
	"strings"
)

// Field is a single parsed time field. The zero value is not usable; fields
// are produced by ParseField and never change afterwards.
type Field struct {
	text string
	kind Kind
	set  uint64 // bit n set when value n matches
}

// Text returns the field as written in the expression.
func (f *Field) Text() string { return f.text }

// Kind returns which time field this is.
func (f *Field) Kind() Kind { return f.kind }

// Len returns the number of matching values.
func (f *Field) Len() int { return bits.OnesCount64(f.set) }

// Contains reports whether v is one of the matching values.
func (f *Field) Contains(v int) bool {
	if v < 0 || v > 63 {
		return false
	}
	return f.set&(1<<uint(v)) != 0
}

// Values returns the matching values in ascending order.
func (f *Field) Values() []int {
	values := make([]int, 0, f.Len())
	for set := f.set; set != 0; set &= set - 1 {
		values = append(values, bits.TrailingZeros64(set))
	}
	return values
}

// String joins the matching values with single spaces.
func (f *Field) String() string {
	var b strings.Builder
	for i, v := range f.Values() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
