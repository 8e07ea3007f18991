package miscutils

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders d with a unit matched to its magnitude.
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}

	// Format based on magnitude.
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%.0fns", float64(d.Nanoseconds()))
	case d < time.Millisecond:
		return fmt.Sprintf("%.2fμs", float64(d.Nanoseconds())/1000)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1000000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// FormatTicks renders a tick count from the default nanosecond clock as a duration.
// Fractional ticks are rounded to the nearest nanosecond.
func FormatTicks(ticks float64) string {
	return FormatDuration(time.Duration(ticks + 0.5))
}

// PadRight pads s with spaces to width columns. Longer strings are returned unchanged.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
