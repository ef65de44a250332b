package utils

import "os"

// GetDefaultRegion returns the region from the environment, falling back
// to us-east-1 when unset
func GetDefaultRegion() string {
	if region := os.Getenv("AWS_REGION"); region != "" {
		return region
	}
	return "us-east-1"
}
