package models

// ScaleDownResult summarizes a scale-to-zero request against one Auto Scaling group
type ScaleDownResult struct {
	GroupName       string
	Region          string
	MinSize         int32
	DesiredCapacity int32
}
