package aws

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

type fakeEC2 struct {
	describeInput  *ec2.DescribeInstancesInput
	describeOutput *ec2.DescribeInstancesOutput
	stopInputs     []*ec2.StopInstancesInput
}

func (f *fakeEC2) DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	f.describeInput = params
	return f.describeOutput, nil
}

func (f *fakeEC2) StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error) {
	f.stopInputs = append(f.stopInputs, params)
	return &ec2.StopInstancesOutput{}, nil
}

func runningInstance(id, name string) ec2types.Instance {
	return ec2types.Instance{
		InstanceId: aws.String(id),
		State:      &ec2types.InstanceState{Name: ec2types.InstanceStateNameRunning},
		Tags: []ec2types.Tag{
			{Key: aws.String("Name"), Value: aws.String(name)},
			{Key: aws.String("Schedulable"), Value: aws.String("true")},
		},
	}
}

func TestRunningInstancesByTagFlattensReservations(t *testing.T) {
	client := &fakeEC2{describeOutput: &ec2.DescribeInstancesOutput{
		Reservations: []ec2types.Reservation{
			{Instances: []ec2types.Instance{
				runningInstance("i-1", "worker-1"),
				runningInstance("i-2", "worker-2"),
			}},
			{Instances: []ec2types.Instance{
				runningInstance("i-3", "worker-3"),
			}},
		},
	}}

	instances, err := NewInstanceClientFromClient(client, "us-east-1").
		RunningInstancesByTag(context.Background(), "Schedulable", "true")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(instances) != 3 {
		t.Fatalf("expected 3 instances, got %d", len(instances))
	}
	for i, want := range []string{"i-1", "i-2", "i-3"} {
		if instances[i].InstanceID != want {
			t.Errorf("expected instance %d to be %s, got %s", i, want, instances[i].InstanceID)
		}
	}
	if instances[0].Name != "worker-1" {
		t.Errorf("expected Name tag to be extracted, got %q", instances[0].Name)
	}
	if instances[0].State != "running" {
		t.Errorf("expected running state, got %q", instances[0].State)
	}

	filters := client.describeInput.Filters
	if len(filters) != 2 {
		t.Fatalf("expected tag and state filters, got %d", len(filters))
	}
	if aws.ToString(filters[0].Name) != "tag:Schedulable" || filters[0].Values[0] != "true" {
		t.Errorf("unexpected tag filter: %+v", filters[0])
	}
	if aws.ToString(filters[1].Name) != "instance-state-name" || filters[1].Values[0] != "running" {
		t.Errorf("unexpected state filter: %+v", filters[1])
	}
}

func TestStopInstancesEmptyListIsNoOp(t *testing.T) {
	client := &fakeEC2{}

	err := NewInstanceClientFromClient(client, "us-east-1").
		StopInstances(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.stopInputs) != 0 {
		t.Errorf("expected no API call for an empty target list, got %d", len(client.stopInputs))
	}
}

func TestStopInstancesPassesIDs(t *testing.T) {
	client := &fakeEC2{}

	err := NewInstanceClientFromClient(client, "us-east-1").
		StopInstances(context.Background(), []string{"i-2", "i-3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.stopInputs) != 1 {
		t.Fatalf("expected 1 stop call, got %d", len(client.stopInputs))
	}
	ids := client.stopInputs[0].InstanceIds
	if len(ids) != 2 || ids[0] != "i-2" || ids[1] != "i-3" {
		t.Errorf("unexpected stop targets: %v", ids)
	}
}
