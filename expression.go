package cron

import (
	"fmt"
	"strings"
)

const tokenCount = 6

// Expression is a parsed cron line: five time fields and the command to run.
type Expression struct {
	fields  [5]*Field
	command string
}

// Field returns the parsed field of the given kind, or nil for an unknown kind.
func (e *Expression) Field(k Kind) *Field {
	if !k.valid() {
		return nil
	}
	return e.fields[k]
}

// Fields returns the five fields in positional order.
func (e *Expression) Fields() []*Field {
	return append([]*Field(nil), e.fields[:]...)
}

// Command returns the trailing command verbatim.
func (e *Expression) Command() string {
	return e.command
}

// String renders one line per field followed by the command.
func (e *Expression) String() string {
	var b strings.Builder
	for _, f := range e.fields {
		fmt.Fprintf(&b, "%-14s%s\n", f.Kind(), f)
	}
	fmt.Fprintf(&b, "%-14s%s", "command", e.command)
	return b.String()
}

// Summary is the expanded form of an Expression, suitable for encoding.
type Summary struct {
	Minute     []int  `json:"minute" yaml:"minute"`
	Hour       []int  `json:"hour" yaml:"hour"`
	DayOfMonth []int  `json:"day_of_month" yaml:"day_of_month"`
	Month      []int  `json:"month" yaml:"month"`
	DayOfWeek  []int  `json:"day_of_week" yaml:"day_of_week"`
	Command    string `json:"command" yaml:"command"`
}

// Summary returns the expanded values of every field.
func (e *Expression) Summary() Summary {
	return Summary{
		Minute:     e.fields[Minute].Values(),
		Hour:       e.fields[Hour].Values(),
		DayOfMonth: e.fields[DayOfMonth].Values(),
		Month:      e.fields[Month].Values(),
		DayOfWeek:  e.fields[DayOfWeek].Values(),
		Command:    e.command,
	}
}

func tokenize(line string) ([]string, error) {
	tokens := strings.Fields(line)
	if len(tokens) != tokenCount {
		return nil, &ExpressionError{Line: line, Tokens: len(tokens)}
	}
	return tokens, nil
}
