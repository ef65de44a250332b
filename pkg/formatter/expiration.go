package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/internal/models"
)

// PrintNoticesTable prints flagged objects as a table
func PrintNoticesTable(result models.ScanResult, startTime time.Time, duration time.Duration) {
	if len(result.Notices) == 0 {
		fmt.Printf("\nNo objects nearing expiration in bucket %s\n", result.Bucket)
		return
	}

	printTimestamp(startTime, duration)

	fmt.Println("\nOBJECTS NEARING EXPIRATION:")
	fmt.Println(strings.Repeat("-", 100))
	fmt.Printf("%-48s %-22s %-15s %s\n",
		"OBJECT KEY", "LAST MODIFIED", "EXPIRES", "DAYS LEFT")
	fmt.Println(strings.Repeat("-", 100))

	for _, notice := range result.Notices {
		fmt.Printf("%-48s %-22s %-15s %d\n",
			notice.ObjectKey,
			humanize.Time(notice.LastModified),
			notice.ExpiresAt.Format("2006-01-02"),
			notice.DaysRemaining)
	}
	fmt.Println(strings.Repeat("-", 100))
}

// PrintNoticesSummary prints a one-line summary of the scan
func PrintNoticesSummary(result models.ScanResult) {
	fmt.Printf("\nScanned %d object(s) in bucket %s, flagged %d",
		result.ObjectsListed, result.Bucket, len(result.Notices))
	if result.Published {
		fmt.Print(", alert published")
	}
	fmt.Println()
}
