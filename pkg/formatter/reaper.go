package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/internal/models"
)

// PrintReapTable prints the reaped instances as a table
func PrintReapTable(result models.ReapResult, startTime time.Time, duration time.Duration) {
	if len(result.Running) == 0 {
		fmt.Println("\nNo running schedulable instances found")
		return
	}

	printTimestamp(startTime, duration)

	stopped := make(map[string]bool, len(result.StoppedIDs))
	for _, id := range result.StoppedIDs {
		stopped[id] = true
	}

	fmt.Println("\nSCHEDULABLE INSTANCES:")
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("%-22s %-24s %-15s %s\n", "INSTANCE ID", "NAME", "REGION", "ACTION")
	fmt.Println(strings.Repeat("-", 80))

	for _, instance := range result.Running {
		action := "kept running"
		if stopped[instance.InstanceID] {
			action = "stop requested"
		}
		fmt.Printf("%-22s %-24s %-15s %s\n",
			instance.InstanceID, instance.Name, result.Region, action)
	}
	fmt.Println(strings.Repeat("-", 80))
}

// PrintReapSummary prints a one-line summary of the reap
func PrintReapSummary(result models.ReapResult) {
	fmt.Printf("\nFound %d running instance(s), sent stop for %d\n",
		len(result.Running), len(result.StoppedIDs))
}
