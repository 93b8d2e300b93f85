package cron

import (
	"time"
)

// Log is emitted after a line has been parsed.
type Log struct {
	Line    string
	Started time.Time
	Ended   time.Time
	Err     error
}

func newLog(line string, started time.Time) Log {
	return Log{
		Line:    line,
		Started: started,
	}
}
