package formatter

import (
	"fmt"
	"time"

	"github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/internal/models"
)

// PrintScaleDownSummary prints the outcome of a scale-to-zero request
func PrintScaleDownSummary(result models.ScaleDownResult, startTime time.Time, duration time.Duration) {
	printTimestamp(startTime, duration)
	fmt.Printf("\nAuto Scaling group %s (%s) set to min=%d, desired=%d\n",
		result.GroupName, result.Region, result.MinSize, result.DesiredCapacity)
}
