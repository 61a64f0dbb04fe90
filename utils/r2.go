package utils

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// R2Config carries the Cloudflare R2 settings from the application config.
type R2Config struct {
	Bucket          string
	AccountID       string
	PublicURL       string
	AccessKeyID     string
	SecretAccessKey string
}

// R2Uploader stores generated report PDFs in an S3-compatible R2 bucket.
type R2Uploader struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

func NewR2Uploader(cfg R2Config) (*R2Uploader, error) {
	if cfg.Bucket == "" || cfg.AccountID == "" || cfg.PublicURL == "" {
		return nil, fmt.Errorf("missing required R2 configuration")
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)

	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:           endpoint,
			SigningRegion: "auto",
		}, nil
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		awsconfig.WithEndpointResolverWithOptions(customResolver),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	return &R2Uploader{
		client:     s3.NewFromConfig(awsCfg),
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Upload stores the PDF under the given key and returns its public URL.
func (u *R2Uploader) Upload(ctx context.Context, fileBytes []byte, filename string) (string, error) {
	key := filepath.Base(filename)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(fileBytes),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to R2: %w", err)
	}

	return fmt.Sprintf("%s/%s", u.publicBase, url.PathEscape(key)), nil
}
