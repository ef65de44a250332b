package aws

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type fakeS3 struct {
	pages []*s3.ListObjectsV2Output
	calls int
	err   error
}

func (f *fakeS3) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.pages[f.calls]
	f.calls++
	return page, nil
}

func TestListObjectsConsumesAllPages(t *testing.T) {
	modified := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	client := &fakeS3{pages: []*s3.ListObjectsV2Output{
		{
			Contents: []s3types.Object{
				{Key: aws.String("a.txt"), Size: aws.Int64(10), LastModified: aws.Time(modified)},
				{Key: aws.String("b.txt"), Size: aws.Int64(20), LastModified: aws.Time(modified)},
			},
			IsTruncated:           aws.Bool(true),
			NextContinuationToken: aws.String("token-1"),
		},
		{
			Contents: []s3types.Object{
				{Key: aws.String("c.txt"), Size: aws.Int64(30), LastModified: aws.Time(modified)},
			},
			IsTruncated: aws.Bool(false),
		},
	}}

	scanner := NewBucketScannerFromClient(client, "backups")
	objects, err := scanner.ListObjects(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.calls != 2 {
		t.Errorf("expected 2 page requests, got %d", client.calls)
	}
	if len(objects) != 3 {
		t.Fatalf("expected 3 objects, got %d", len(objects))
	}
	if objects[0].Key != "a.txt" || objects[2].Key != "c.txt" {
		t.Errorf("listing order not preserved: %v", objects)
	}
	if objects[1].Size != 20 {
		t.Errorf("expected size 20, got %d", objects[1].Size)
	}
	if !objects[0].LastModified.Equal(modified) {
		t.Errorf("unexpected last-modified: %v", objects[0].LastModified)
	}
}

func TestListObjectsFailurePropagates(t *testing.T) {
	listErr := errors.New("access denied")
	scanner := NewBucketScannerFromClient(&fakeS3{err: listErr}, "backups")

	_, err := scanner.ListObjects(context.Background())
	if !errors.Is(err, listErr) {
		t.Fatalf("expected listing error, got %v", err)
	}
}
