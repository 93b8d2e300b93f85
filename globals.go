package cron

import "io"

var parser, _ = New()

// Configure the global parser.
func Configure(opts ...Option) error {
	for _, opt := range opts {
		err := opt(parser)
		if err != nil {
			return err
		}
	}
	return nil
}

// Parse a cron line with the global parser.
func Parse(line string) (*Expression, error) {
	return parser.Parse(line)
}

// MustParse calls Parse and panics if an error is returned.
func MustParse(line string) *Expression {
	expr, err := Parse(line)
	if err != nil {
		panic(err)
	}
	return expr
}

// ParseField expands a single field with the global parser.
func ParseField(text string, kind Kind) (*Field, error) {
	return parser.ParseField(text, kind)
}

// ReadTab parses every entry of a crontab stream with the global parser.
func ReadTab(r io.Reader) ([]Entry, error) {
	return parser.ReadTab(r)
}
