// Package objectstore wraps the external object storage service used for
// image hosting. The server never proxies image bytes; it hands out
// presigned PUT URLs and stores the resulting public URLs on items.
package objectstore

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appconfig "github.com/Shubham06102003/home-inventory-api/internal/config"
)

const presignExpiry = 15 * time.Minute

// UploadTarget is a presigned upload slot: PUT the image to UploadURL, then
// reference it by Key.
type UploadTarget struct {
	Key       string
	UploadURL string
}

// Store issues presigned upload URLs against an S3-compatible bucket
// (AWS S3 or MinIO via S3_BASE_ENDPOINT).
type Store struct {
	cfg *appconfig.Config
}

func New(cfg *appconfig.Config) *Store {
	return &Store{cfg: cfg}
}

func (s *Store) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.S3AccessKey,
			s.cfg.S3SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load object storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s.cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.S3BaseEndpoint)
		}
	})

	return s3.NewPresignClient(client), nil
}

// PresignPut returns a presigned PUT URL for a fresh storage key.
func (s *Store) PresignPut(ctx context.Context) (*UploadTarget, error) {
	presignClient, err := s.presignClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.cfg.S3Bucket
	key := randomStorageKey()

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &UploadTarget{Key: key, UploadURL: req.URL}, nil
}

func randomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("images/%d/%02d/%02d/%s", d.Year(), d.Month(), d.Day(), uuid.New())
}
