package handlers

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type capacityCall struct {
	name    string
	minSize int32
	desired int32
}

type fakeGroupScaler struct {
	calls []capacityCall
	err   error
}

func (f *fakeGroupScaler) SetCapacity(ctx context.Context, name string, minSize, desired int32) error {
	f.calls = append(f.calls, capacityCall{name: name, minSize: minSize, desired: desired})
	return f.err
}

func (f *fakeGroupScaler) Region() string {
	return "us-east-1"
}

func TestScaleDownSetsZeroCapacity(t *testing.T) {
	asg := &fakeGroupScaler{}

	result, err := NewGroupScaleDown("workers", asg).ScaleDown(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(asg.calls) != 1 {
		t.Fatalf("expected exactly 1 update call, got %d", len(asg.calls))
	}
	call := asg.calls[0]
	if call.name != "workers" || call.minSize != 0 || call.desired != 0 {
		t.Errorf("expected workers scaled to 0/0, got %+v", call)
	}
	if result.GroupName != "workers" {
		t.Errorf("expected result for group workers, got %q", result.GroupName)
	}
}

func TestScaleDownFailurePropagates(t *testing.T) {
	updateErr := errors.New("group not found")
	asg := &fakeGroupScaler{err: updateErr}

	_, err := NewGroupScaleDown("workers", asg).ScaleDown(context.Background())
	if !errors.Is(err, updateErr) {
		t.Fatalf("expected update error, got %v", err)
	}
}

func TestScaleDownHandleNamesGroup(t *testing.T) {
	asg := &fakeGroupScaler{}

	resp, err := NewGroupScaleDown("workers", asg).Handle(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(resp.Body, "workers") {
		t.Errorf("body should name the group: %q", resp.Body)
	}
}
