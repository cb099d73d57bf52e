package storage

import (
	"context"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"shorten-api/internal/domain/apperrors"
	"shorten-api/internal/domain/model"
	"shorten-api/pkg/msg"
)

// S3API is the subset of the S3 client the gateway uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

type S3BlobGateway struct {
	client     S3API
	bucketName string
}

var _ BlobGateway = (*S3BlobGateway)(nil)

func NewS3BlobGateway(client S3API, bucketName string) *S3BlobGateway {
	return &S3BlobGateway{client: client, bucketName: bucketName}
}

func (gateway *S3BlobGateway) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(gateway.bucketName),
		Key:    aws.String(key),
		Body:   body,
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := gateway.client.PutObject(ctx, input); err != nil {
		return apperrors.Storage(msg.GetMessage("shortcode.error.storage"), err)
	}
	return nil
}

func (gateway *S3BlobGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := gateway.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(gateway.bucketName),
	})
	if err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"bucket": gateway.bucketName,
		},
	}
}
