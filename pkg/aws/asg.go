package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
)

// AutoScalingAPI is the subset of the Auto Scaling client used by GroupClient.
type AutoScalingAPI interface {
	UpdateAutoScalingGroup(ctx context.Context, params *autoscaling.UpdateAutoScalingGroupInput, optFns ...func(*autoscaling.Options)) (*autoscaling.UpdateAutoScalingGroupOutput, error)
}

// GroupClient updates Auto Scaling group capacity.
type GroupClient struct {
	client AutoScalingAPI
	region string
}

// NewGroupClient creates a new GroupClient.
func NewGroupClient(cfg aws.Config) *GroupClient {
	return &GroupClient{client: autoscaling.NewFromConfig(cfg), region: cfg.Region}
}

// NewGroupClientFromClient wires an existing client. Used by tests.
func NewGroupClientFromClient(client AutoScalingAPI, region string) *GroupClient {
	return &GroupClient{client: client, region: region}
}

// Region returns the region the client operates in.
func (c *GroupClient) Region() string {
	return c.region
}

// SetCapacity overwrites the group's minimum size and desired capacity.
// Fire-and-forget: no read-before-write, no convergence check.
func (c *GroupClient) SetCapacity(ctx context.Context, name string, minSize, desired int32) error {
	_, err := c.client.UpdateAutoScalingGroup(ctx, &autoscaling.UpdateAutoScalingGroupInput{
		AutoScalingGroupName: aws.String(name),
		MinSize:              aws.Int32(minSize),
		DesiredCapacity:      aws.Int32(desired),
	})
	if err != nil {
		return fmt.Errorf("error updating Auto Scaling group %s: %w", name, err)
	}
	return nil
}
