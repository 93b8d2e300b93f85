package cron

import (
	"strconv"
	"strings"
)

// matcher tries one field syntax. A matcher that does not recognise the text
// returns false and leaves the field untouched.
type matcher func(f *Field) (bool, error)

// Syntaxes are tried in order; the first that matches decides the outcome.
var matchers = []matcher{
	matchList,
	matchRange,
	matchWildcard,
	matchLiteral,
}

func parseField(text string, kind Kind) (*Field, error) {
	if !kind.valid() {
		return nil, &FieldError{Kind: kind, Text: text, Err: ErrUnknownKind}
	}

	f := &Field{text: text, kind: kind}
	for _, match := range matchers {
		ok, err := match(f)
		if err != nil {
			return nil, err
		}
		if ok {
			return f, nil
		}
	}
	// matchLiteral always matches
	panic("cron: no field syntax matched " + strconv.Quote(text))
}

// matchList handles "a,b,c".
func matchList(f *Field) (bool, error) {
	if !strings.Contains(f.text, ",") {
		return false, nil
	}
	for _, token := range strings.Split(f.text, ",") {
		v, err := f.number(token)
		if err != nil {
			return true, err
		}
		if err := f.populate(v, v, 1); err != nil {
			return true, err
		}
	}
	return true, nil
}

// matchRange handles "a-b". Anything other than two non-empty halves falls
// through, so "1-2-3" ends up as a malformed literal.
func matchRange(f *Field) (bool, error) {
	parts := strings.Split(f.text, "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false, nil
	}
	start, err := f.number(parts[0])
	if err != nil {
		return true, err
	}
	end, err := f.number(parts[1])
	if err != nil {
		return true, err
	}
	return true, f.populate(start, end, 1)
}

// matchWildcard handles "*" and "*/step". Only the leading '*' is inspected,
// whatever follows it up to the '/' is ignored.
func matchWildcard(f *Field) (bool, error) {
	if !strings.HasPrefix(f.text, "*") {
		return false, nil
	}
	parts := strings.Split(f.text, "/")
	if len(parts) > 2 {
		return true, f.fail(ErrTooManyIntervals, "")
	}
	step := 1
	if len(parts) == 2 {
		var err error
		if step, err = f.number(parts[1]); err != nil {
			return true, err
		}
	}
	return true, f.populate(f.kind.Min(), f.kind.Max(), step)
}

// matchLiteral treats the whole text as one number.
func matchLiteral(f *Field) (bool, error) {
	v, err := f.number(f.text)
	if err != nil {
		return true, err
	}
	return true, f.populate(v, v, 1)
}

func (f *Field) number(token string) (int, error) {
	v, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, f.fail(ErrMalformedNumber, token)
	}
	return int(v), nil
}

// populate adds start, start+step, ... up to end.
func (f *Field) populate(start, end, step int) error {
	switch {
	case step == 0:
		return f.fail(ErrZeroStep, "")
	case end < start:
		return f.fail(ErrInvertedRange, "")
	case start < f.kind.Min() || end > f.kind.Max():
		return f.fail(ErrOutOfBounds, "")
	}
	for v := start; v <= end; v += step {
		f.set |= 1 << uint(v)
	}
	return nil
}

func (f *Field) fail(err error, token string) *FieldError {
	return &FieldError{Kind: f.kind, Text: f.text, Token: token, Err: err}
}
