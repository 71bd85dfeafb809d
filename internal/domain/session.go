package domain

import "time"

// UsageSession is one flushed stretch of a window being visible, already
// categorized. Start and end are Unix seconds.
type UsageSession struct {
	ID        string
	Process   string
	Title     string
	Category  string
	StartTime int64
	EndTime   int64
}

// Date returns the calendar-date key the session belongs to, derived from
// its start time in local time.
func (s UsageSession) Date() string {
	return DateOf(time.Unix(s.StartTime, 0))
}

// Duration returns the session length in seconds.
func (s UsageSession) Duration() int64 {
	return s.EndTime - s.StartTime
}
