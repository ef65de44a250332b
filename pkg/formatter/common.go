package formatter

import (
	"fmt"
	"time"
)

// printTimestamp prints the run timestamp and duration
func printTimestamp(startTime time.Time, duration time.Duration) {
	timeStr := startTime.Format("2006-01-02 15:04:05")
	durationStr := fmt.Sprintf("%.2fs", duration.Seconds())

	fmt.Printf("Run completed at %s (took %s)\n", timeStr, durationStr)
}
