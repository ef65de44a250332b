package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/internal/models"
)

// BucketScanner lists the objects of a single S3 bucket.
type BucketScanner struct {
	client s3.ListObjectsV2APIClient
	bucket string
}

// NewBucketScanner creates a BucketScanner for the given bucket.
func NewBucketScanner(cfg aws.Config, bucket string) *BucketScanner {
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true // Use path-style addressing which is more reliable
	})
	return &BucketScanner{client: client, bucket: bucket}
}

// NewBucketScannerFromClient wires an existing client. Used by tests.
func NewBucketScannerFromClient(client s3.ListObjectsV2APIClient, bucket string) *BucketScanner {
	return &BucketScanner{client: client, bucket: bucket}
}

// ListObjects consumes the entire paginated listing of the bucket and
// returns every object it contains, in listing order.
func (c *BucketScanner) ListObjects(ctx context.Context) ([]models.StoredObject, error) {
	var objects []models.StoredObject

	paginator := s3.NewListObjectsV2Paginator(c.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing objects in bucket %s: %w", c.bucket, err)
		}
		for _, obj := range page.Contents {
			objects = append(objects, models.StoredObject{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}

	return objects, nil
}
