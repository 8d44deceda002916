package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	appcfg "go-drive/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignExpiry = 15 * time.Minute

type S3Store struct {
	client *s3.Client
	bucket string
	// endpoint is kept to build stable object URLs for stored metadata
	endpoint string
}

func NewS3Store(cfg *appcfg.Config) (ObjectStore, error) {
	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		o.UsePathStyle = true
	})

	return &S3Store{
		client:   client,
		bucket:   cfg.S3Bucket,
		endpoint: strings.TrimRight(cfg.S3Endpoint, "/"),
	}, nil
}

// BeginUpload returns a presigned PUT for a fresh storage key.
func (s *S3Store) BeginUpload(ctx context.Context) (*UploadTarget, error) {
	key := RandomStorageKey()

	presignClient := s3.NewPresignClient(s.client)
	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, err
	}

	return &UploadTarget{Key: key, URL: req.URL}, nil
}

// ResolveURL confirms the payload exists and returns its download location.
// A missing or unreadable object is a hard failure: the caller must not
// create metadata for it.
func (s *S3Store) ResolveURL(ctx context.Context, storageKey string) (string, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    &storageKey,
	})
	if err != nil {
		return "", fmt.Errorf("head object %s: %w", storageKey, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, storageKey), nil
}

func (s *S3Store) Delete(ctx context.Context, storageKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &storageKey,
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", storageKey, err)
	}
	return nil
}
