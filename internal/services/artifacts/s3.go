package artifacts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Client abstracts the S3 API operations used by [S3Store].
// The [s3.Client] type satisfies this interface.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store implements Store backed by Amazon S3 or any S3-compatible object
// store (MinIO, R2, etc.).
//
// Artifact keys are mapped to S3 keys under an optional prefix. The caller is
// responsible for configuring the [s3.Client] with appropriate credentials,
// region, and endpoint. Returned URLs are publicURL + "/" + object key, so
// publicURL should point at the bucket (or the CDN in front of it).
type S3Store struct {
	client    S3Client
	bucket    string
	prefix    string
	publicURL string
}

// NewS3Store creates an S3-backed artifact store.
//
// The client should be pre-configured (credentials, region, endpoint).
// Any type satisfying [S3Client] is accepted; typically an [s3.Client].
// Prefix is prepended to all object keys; pass "" for no prefix.
func NewS3Store(client S3Client, bucket, prefix, publicURL string) *S3Store {
	return &S3Store{
		client:    client,
		bucket:    bucket,
		prefix:    prefix,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// key builds the full S3 object key for the given artifact key.
func (s *S3Store) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}

// Put uploads the artifact via PutObject and returns its public URL
func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(key)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload artifact %s: %w", key, err)
	}
	return s.publicURL + "/" + s.key(key), nil
}

// Delete removes the artifact via DeleteObject. AWS DeleteObject already
// succeeds for missing keys; some S3-compatible stores return NoSuchKey
// instead, which is also treated as success.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(key)),
	})
	if err != nil && !isS3NotFound(err) {
		return fmt.Errorf("failed to delete artifact %s: %w", key, err)
	}
	return nil
}

// isS3NotFound reports whether err indicates the S3 object does not exist.
func isS3NotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}

// Compile-time interface check.
var _ Store = (*S3Store)(nil)
