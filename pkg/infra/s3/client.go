package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lambdalint/linthook/pkg/domain/interfaces"
	"github.com/lambdalint/linthook/pkg/domain/types"
)

// Client puts lint logs into an S3 bucket. Objects are world readable so
// that the URL in a commit status resolves without credentials.
type Client struct {
	bucket string
	region string
	api    *s3.Client
}

var _ interfaces.ObjectStore = (*Client)(nil)

type Option func(*Client)

// WithAPI replaces the S3 API client, mainly for testing.
func WithAPI(api *s3.Client) Option {
	return func(x *Client) {
		x.api = api
	}
}

func New(ctx context.Context, bucket, region string, options ...Option) (*Client, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "S3 bucket is empty")
	}
	if region == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "S3 region is empty")
	}

	client := &Client{
		bucket: bucket,
		region: region,
	}
	for _, opt := range options {
		opt(client)
	}

	if client.api == nil {
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to load AWS config", goerr.V("region", region))
		}
		client.api = s3.NewFromConfig(cfg)
	}

	return client, nil
}

// Put implements interfaces.ObjectStore.
func (x *Client) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(x.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ACL:         s3types.ObjectCannedACLPublicRead,
		ContentType: aws.String(contentType),
	}

	if _, err := x.api.PutObject(ctx, input); err != nil {
		return "", goerr.Wrap(err, "failed to put object",
			goerr.V("bucket", x.bucket),
			goerr.V("key", key),
		)
	}

	return x.ObjectURL(key), nil
}

// ObjectURL returns the public URL of an object in the bucket.
func (x *Client) ObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", x.bucket, x.region, key)
}
