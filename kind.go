package cron

// Kind identifies one of the five time fields of a cron expression.
type Kind int

const (
	// Minute of the hour, 0-59.
	Minute Kind = iota
	// Hour of the day, 0-23.
	Hour
	// DayOfMonth is the day of the month, 1-31.
	DayOfMonth
	// Month of the year, 1-12.
	Month
	// DayOfWeek is the day of the week, 1-7.
	DayOfWeek
)

type bounds struct {
	name     string
	min, max int
}

var kinds = [...]bounds{
	Minute:     {"minute", 0, 59},
	Hour:       {"hour", 0, 23},
	DayOfMonth: {"day of month", 1, 31},
	Month:      {"month", 1, 12},
	DayOfWeek:  {"day of week", 1, 7},
}

// Kinds returns all field kinds in positional order.
func Kinds() []Kind {
	return []Kind{Minute, Hour, DayOfMonth, Month, DayOfWeek}
}

// Min is the lowest value the field accepts.
func (k Kind) Min() int { return kinds[k].min }

// Max is the highest value the field accepts.
func (k Kind) Max() int { return kinds[k].max }

func (k Kind) String() string {
	if !k.valid() {
		return "unknown"
	}
	return kinds[k].name
}

func (k Kind) valid() bool {
	return k >= Minute && k <= DayOfWeek
}
