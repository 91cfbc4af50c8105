// Package format renders durations and sizes for terminal output.
package format

import (
	"fmt"
	"time"
)

// Duration formats d for display: microseconds below a millisecond,
// milliseconds below a second, and the default representation otherwise.
func Duration(d time.Duration) string {
	switch {
	case d <= 0:
		return "< 1µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}

// Bytes formats n with a binary unit.
func Bytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
