// Package cron expands standard five-field cron lines into the concrete values each field matches.
//
// A line holds minute, hour, day of month, month and day of week followed by a command:
//
//	expr, err := cron.Parse("*/15 0 1,15 * 1-5 /usr/bin/find")
//
// Each field is either a list ("1,15"), a range ("1-5"), a wildcard with an optional step ("*", "*/15")
// or a single number. Combined forms and names are not supported. The package only expands and prints,
// it never runs the command.
package cron
