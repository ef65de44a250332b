package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSPublishAPI is the subset of the SNS client used by Notifier.
type SNSPublishAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Notifier publishes consolidated alerts to a single SNS topic.
type Notifier struct {
	client   SNSPublishAPI
	topicARN string
}

// NewNotifier creates a Notifier for the given topic ARN.
func NewNotifier(cfg aws.Config, topicARN string) *Notifier {
	return &Notifier{client: sns.NewFromConfig(cfg), topicARN: topicARN}
}

// NewNotifierFromClient wires an existing client. Used by tests.
func NewNotifierFromClient(client SNSPublishAPI, topicARN string) *Notifier {
	return &Notifier{client: client, topicARN: topicARN}
}

// Publish sends one message to the configured topic.
func (n *Notifier) Publish(ctx context.Context, subject, message string) error {
	_, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("error publishing to SNS topic %s: %w", n.topicARN, err)
	}
	return nil
}
