package records

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/jfrjs/publicada/internal/common"
	"github.com/jfrjs/publicada/internal/server/config"
	"github.com/jfrjs/publicada/internal/server/models"
)

// s3API is the subset of the S3 client used by S3Repository. Declared as an
// interface so tests can substitute a fake client.
type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// S3Repository stores each record as one JSON object in an S3-compatible
// bucket under records/<id>.json.
type S3Repository struct {
	client s3API
	bucket string
}

// NewS3Repository builds an S3 client from server configuration
// (MinIO-style static credentials and base endpoint).
func NewS3Repository(ctx context.Context, cfg *config.Config) (*S3Repository, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("error loading s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return &S3Repository{client: client, bucket: cfg.S3Bucket}, nil
}

func storageKey(id string) string {
	return "records/" + id + ".json"
}

func isNoSuchKey(err error) bool {
	var noKey *types.NoSuchKey
	var notFound *types.NotFound
	return errors.As(err, &noKey) || errors.As(err, &notFound)
}

func (r *S3Repository) Get(ctx context.Context, id string) (*models.Record, error) {
	key := storageKey(id)
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &r.bucket,
		Key:    &key,
	})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("s3 error: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 error: %w", err)
	}

	record := &models.Record{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("error decoding record %s: %w", id, err)
	}
	return record, nil
}

func (r *S3Repository) Put(ctx context.Context, record *models.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error encoding record %s: %w", record.ID, err)
	}

	key := storageKey(record.ID)
	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &r.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 error: %w", err)
	}
	return nil
}

func (r *S3Repository) Delete(ctx context.Context, id string) error {
	key := storageKey(id)

	// DeleteObject is a no-op on missing keys, so probe first to keep the
	// not-found contract of the postgres backend.
	if _, err := r.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &r.bucket,
		Key:    &key,
	}); err != nil {
		if isNoSuchKey(err) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("s3 error: %w", err)
	}

	if _, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &r.bucket,
		Key:    &key,
	}); err != nil {
		return fmt.Errorf("s3 error: %w", err)
	}
	return nil
}
