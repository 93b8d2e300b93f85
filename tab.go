package cron

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ReadTab (crontab is short for cron table) parses every entry of r. Blank
// lines and lines starting with '#' are skipped. The first invalid line stops
// the read; its error is wrapped with the line number.
func (p *Parser) ReadTab(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		expr, err := p.Parse(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		entries = append(entries, Entry{Line: n, Text: text, Expression: expr})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading tab")
	}
	return entries, nil
}
