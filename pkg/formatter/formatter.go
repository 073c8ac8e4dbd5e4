package formatter

import (
	"time"
)

// PostDateLayout mirrors a browser's toLocaleString for en-US.
const PostDateLayout = "1/2/2006, 3:04:05 PM"

const nanosPerMilli = int64(time.Millisecond)

// PostTime converts a post timestamp in nanoseconds to a time truncated to
// millisecond precision.
// Example: 1700000000000000000 -> time.UnixMilli(1700000000000)
func PostTime(ns int64) time.Time {
	return time.UnixMilli(ns / nanosPerMilli)
}

// FormatPostDate renders a post timestamp as a human-readable date in loc.
// A nil loc means local time.
func FormatPostDate(ns int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return PostTime(ns).In(loc).Format(PostDateLayout)
}

// LoadLocation resolves a time zone name, falling back to local time.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local, err
	}
	return loc, nil
}
