package models

import "time"

// InstanceInfo represents EC2 instance information
type InstanceInfo struct {
	InstanceID string
	Name       string
	State      string
	Tags       map[string]string
	LaunchTime time.Time
}

// ReapResult summarizes a single reaper run
type ReapResult struct {
	Region     string
	Running    []InstanceInfo
	StoppedIDs []string
}

// Kept returns the instance left running, if any
func (r ReapResult) Kept() *InstanceInfo {
	if len(r.Running) == 0 {
		return nil
	}
	return &r.Running[0]
}
