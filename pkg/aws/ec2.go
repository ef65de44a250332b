package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/internal/models"
	"github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/pkg/utils"
)

// EC2API is the subset of the EC2 client used by InstanceClient.
type EC2API interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
}

// InstanceClient queries and stops EC2 instances.
type InstanceClient struct {
	client EC2API
	region string
}

// NewInstanceClient creates a new InstanceClient.
func NewInstanceClient(cfg aws.Config) *InstanceClient {
	return &InstanceClient{client: ec2.NewFromConfig(cfg), region: cfg.Region}
}

// NewInstanceClientFromClient wires an existing client. Used by tests.
func NewInstanceClientFromClient(client EC2API, region string) *InstanceClient {
	return &InstanceClient{client: client, region: region}
}

// Region returns the region the client operates in.
func (c *InstanceClient) Region() string {
	return c.region
}

// RunningInstancesByTag returns all running instances carrying the given
// tag, flattened across reservations in the order the API returns them.
func (c *InstanceClient) RunningInstancesByTag(ctx context.Context, key, value string) ([]models.InstanceInfo, error) {
	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("tag:" + key),
				Values: []string{value},
			},
			{
				Name:   aws.String("instance-state-name"),
				Values: []string{string(types.InstanceStateNameRunning)},
			},
		},
	}

	result, err := c.client.DescribeInstances(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("error querying EC2 instances: %w", err)
	}

	instances := []models.InstanceInfo{}
	for _, reservation := range result.Reservations {
		for _, instance := range reservation.Instances {
			info := models.InstanceInfo{
				InstanceID: utils.SafeDeref(instance.InstanceId),
				Name:       utils.GetName(instance.Tags),
				Tags:       utils.GetTagsMap(instance.Tags),
			}
			if instance.State != nil {
				info.State = string(instance.State.Name)
			}
			if instance.LaunchTime != nil {
				info.LaunchTime = *instance.LaunchTime
			}
			instances = append(instances, info)
		}
	}

	return instances, nil
}

// StopInstances issues a stop request for the given instance IDs. An empty
// list is a no-op: the EC2 API rejects an empty ID list.
func (c *InstanceClient) StopInstances(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := c.client.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: ids,
	})
	if err != nil {
		return fmt.Errorf("error stopping instances %s: %w", strings.Join(ids, ", "), err)
	}
	return nil
}
