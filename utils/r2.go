package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type R2Config struct {
	AccountID       string
	Bucket          string
	PublicURL       string // e.g. https://files.example.com
	AccessKeyID     string
	SecretAccessKey string
}

func (c R2Config) Enabled() bool {
	return c.Bucket != "" && c.AccountID != "" && c.PublicURL != ""
}

// R2Archive stores rendered invoices in a Cloudflare R2 bucket.
type R2Archive struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

func NewR2Archive(ctx context.Context, cfg R2Config) (*R2Archive, error) {
	if !cfg.Enabled() {
		return nil, errors.New("missing required R2 settings")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("auto"), // Important for R2
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	return &R2Archive{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Upload stores a PDF under key and returns its public URL.
func (a *R2Archive) Upload(ctx context.Context, key string, body []byte) (string, error) {
	key = path.Base(key)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to R2: %w", err)
	}
	return a.PublicURL(key), nil
}

func (a *R2Archive) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", a.publicBase, url.PathEscape(key))
}

// Delete removes the object a public URL points to.
func (a *R2Archive) Delete(ctx context.Context, fileURL string) error {
	key, err := ObjectKey(fileURL)
	if err != nil {
		return err
	}
	_, err = a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete R2 object: %w", err)
	}
	return nil
}

// ObjectKey extracts the object key from a public file URL.
func ObjectKey(fileURL string) (string, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("invalid file URL: %w", err)
	}
	key := path.Base(u.Path)
	if key == "/" || key == "." {
		return "", fmt.Errorf("invalid file URL: %q has no object key", fileURL)
	}
	return key, nil
}
