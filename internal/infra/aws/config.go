package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"shorten-api/pkg/resource"
)

// NewConfig loads the AWS configuration from application properties. With
// app.cloud.aws-endpoint set (LocalStack), all service clients are pointed at
// that endpoint; static credentials are used when provided, otherwise the SDK
// default chain applies.
func NewConfig(ctx context.Context) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(resource.GetString("app.cloud.aws-region")),
	}

	if accessKey := resource.GetString("app.cloud.aws-access-key-id"); accessKey != "" {
		secretKey := resource.GetString("app.cloud.aws-secret-access-key")
		if secretKey != "" {
			opts = append(opts, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
		}
	}

	return config.LoadDefaultConfig(ctx, opts...)
}

// Endpoint returns the configured custom endpoint, empty outside LocalStack.
func Endpoint() string {
	return resource.GetString("app.cloud.aws-endpoint")
}
