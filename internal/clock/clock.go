package clock

import "time"

// Layout is the timestamp format every record in the system stores and
// prints: local time, seconds precision.
const Layout = "2006-01-02 15:04:05"

// Timestamp returns the current time rendered in Layout.
func Timestamp() string {
	return time.Now().Format(Layout)
}
