package models

import "time"

// StoredObject represents a single object from a bucket listing
type StoredObject struct {
	Key          string
	Size         int64 // in bytes
	LastModified time.Time
}

// ExpirationNotice represents one object inside the pre-expiration alert window
type ExpirationNotice struct {
	ObjectKey     string
	LastModified  time.Time
	ExpiresAt     time.Time
	DaysRemaining int
	Message       string // pre-rendered block for the consolidated alert body
}

// ScanResult summarizes a single expiration scan
type ScanResult struct {
	Bucket        string
	ObjectsListed int
	Notices       []ExpirationNotice
	Published     bool
}
