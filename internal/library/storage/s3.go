package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/wpmvc/helpers/internal/config"
	transport "github.com/wpmvc/helpers/internal/transport/http"
)

// S3 keeps stored files in an S3-compatible bucket.
type S3 struct {
	// client is the S3 API client.
	client *s3.Client
	// bucket is the bucket name.
	bucket string
	// prefix is prepended to every object key, empty for none.
	prefix string
	// baseURL is the public URL prefix, without a trailing slash.
	baseURL string
}

// NewS3 creates an S3 backend from the configured settings.
// Static credentials are used when both keys are set; otherwise the SDK
// default chain applies. A custom endpoint and path-style addressing
// support S3-compatible providers such as MinIO and Cloudflare R2.
func NewS3(ctx context.Context, settings config.S3Settings, baseURL string) (*S3, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error

	if settings.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(settings.Region))
	}

	if settings.AccessKey != "" && settings.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKey, settings.SecretKey, "")))
	}

	// Route SDK calls through the logging transport so debug runs show the raw exchanges.
	loadOpts = append(loadOpts, awsconfig.WithHTTPClient(&http.Client{
		Transport: transport.NewLogTransport(http.DefaultTransport, config.DefaultMaxLogLength),
		Timeout:   transport.DefaultTimeout,
	}))

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var clientOpts []func(*s3.Options)

	if settings.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(settings.Endpoint)
		})
	}

	if settings.UsePathStyle {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	return &S3{
		client:  s3.NewFromConfig(awsCfg, clientOpts...),
		bucket:  settings.Bucket,
		prefix:  strings.Trim(settings.KeyPrefix, "/"),
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save writes the contents of r under key, overwriting an existing object.
func (s *S3) Save(ctx context.Context, key string, r io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
		Body:   r,
	})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}

	return nil
}

// Open returns a reader over the object stored under key.
func (s *S3) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})

	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}

	return output.Body, nil
}

// Exists reports whether an object is stored under key.
func (s *S3) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})

	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to head object: %w", err)
	}

	return true, nil
}

// Delete removes the object stored under key.
// S3 treats deleting a missing object as a success, so the existence check
// runs first to keep the backend contract uniform.
func (s *S3) Delete(ctx context.Context, key string) error {
	exists, err := s.Exists(ctx, key)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}

	if _, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

// URL returns the public URL of the object stored under key.
func (s *S3) URL(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(path.Clean(key), "/")
}

// objectKey applies the configured key prefix.
func (s *S3) objectKey(key string) string {
	if s.prefix == "" {
		return key
	}

	return s.prefix + "/" + key
}
