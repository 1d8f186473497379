package formatting

import (
	"fmt"
	"time"
)

const (
	msPerHour   = 3600000
	msPerMinute = 60000
	msPerSecond = 1000
)

// Elapsed renders d as HH:MM:SS. Negative durations render as zero.
func Elapsed(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}

	h := ms / msPerHour
	m := (ms % msPerHour) / msPerMinute
	s := (ms % msPerMinute) / msPerSecond
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ElapsedSince renders the time between start and now.
func ElapsedSince(start, now time.Time) string {
	return Elapsed(now.Sub(start))
}
