package session

import "time"

// Clock supplies the timestamp text stored with each visit.
type Clock interface {
	Now() string
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() string

// Now implements Clock.
func (f ClockFunc) Now() string { return f() }

// SystemClock formats the wall clock with Layout (time.ANSIC when empty).
type SystemClock struct {
	Layout string
}

// Now implements Clock.
func (c SystemClock) Now() string {
	layout := c.Layout
	if layout == "" {
		layout = time.ANSIC
	}
	return time.Now().Format(layout)
}
