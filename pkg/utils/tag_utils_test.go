package utils

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

func TestGetTagValue(t *testing.T) {
	tags := []types.Tag{
		{Key: aws.String("Name"), Value: aws.String("worker-1")},
		{Key: aws.String("Schedulable"), Value: aws.String("true")},
		{Key: aws.String("Empty")},
	}

	if got := GetTagValue(tags, "Schedulable"); got != "true" {
		t.Errorf("expected true, got %q", got)
	}
	if got := GetTagValue(tags, "Empty"); got != "" {
		t.Errorf("expected empty value, got %q", got)
	}
	if got := GetTagValue(tags, "Missing"); got != "" {
		t.Errorf("expected empty for missing key, got %q", got)
	}
	if got := GetName(tags); got != "worker-1" {
		t.Errorf("expected worker-1, got %q", got)
	}
}

func TestGetTagsMap(t *testing.T) {
	tags := []types.Tag{
		{Key: aws.String("Name"), Value: aws.String("worker-1")},
		{Key: aws.String("NilValue")},
	}

	m := GetTagsMap(tags)
	if len(m) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(m))
	}
	if m["Name"] != "worker-1" {
		t.Errorf("unexpected map: %v", m)
	}
}
