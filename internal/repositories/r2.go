package repositories

import (
	"bytes"
	"context"
	"fmt"
	"io"

	errors "github.com/Laisky/errors/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/rohits-web03/shopdrive/internal/common"
	"github.com/rohits-web03/shopdrive/internal/config"
	"github.com/rohits-web03/shopdrive/internal/utils"
)

// R2BlobStore keeps blobs in a Cloudflare R2 (or any S3-compatible) bucket.
// The stored path is the object key.
type R2BlobStore struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewR2BlobStore initializes the client using static credentials and a custom endpoint.
func NewR2BlobStore(cfg config.R2Config) (*R2BlobStore, error) {
	if cfg.BucketName == "" {
		return nil, errors.New("R2 bucket name is required")
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		if cfg.AccountID == "" {
			return nil, errors.New("R2 account id or endpoint is required")
		}
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	}

	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2BlobStore{client: client, bucket: cfg.BucketName, prefix: cfg.KeyPrefix}, nil
}

// EnsureReady checks that the bucket is reachable.
func (s *R2BlobStore) EnsureReady(ctx context.Context) error {
	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)}); err != nil {
		return common.IO(err, "Storage bucket is not reachable")
	}
	return nil
}

func (s *R2BlobStore) Write(ctx context.Context, originalName string, data []byte) (string, error) {
	key, err := s.objectKey(originalName)
	if err != nil {
		return "", common.IO(err, "Failed to generate storage key")
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", common.IO(err, "Failed to store file")
	}
	return key, nil
}

func (s *R2BlobStore) Read(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *s3types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, common.NotFound("File not found on disk")
		}
		return nil, common.IO(err, "Failed to read file")
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, common.IO(err, "Failed to read file")
	}
	return data, nil
}

// Exists checks if a given object key exists in the bucket.
func (s *R2BlobStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *s3types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		// Other error (e.g. auth, network)
		return false, common.IO(err, "Failed to check file")
	}
	return true, nil
}

// Delete removes the object. S3 deletes are idempotent, so a missing key is not an error.
func (s *R2BlobStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *s3types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil
		}
		return common.IO(err, "Failed to delete file")
	}
	return nil
}

func (s *R2BlobStore) objectKey(originalName string) (string, error) {
	key, err := utils.GenerateStorageKey(originalName)
	if err != nil {
		return "", err
	}
	return s.prefix + key, nil
}
