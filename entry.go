package cron

// Entry is a single parsed line of a crontab.
type Entry struct {
	// 1-based line number within the tab
	Line int

	// line as read, surrounding whitespace removed
	Text string

	Expression *Expression
}
