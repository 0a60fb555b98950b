// Package media stores uploaded files in S3-compatible object storage
// and hands back opaque media IDs that entities reference by string.
package media

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Folders accepted by the upload endpoint. Anything else is rejected
// before touching the object store.
var AllowedFolders = map[string]bool{
	"events":     true,
	"customers":  true,
	"organizers": true,
	"gallery":    true,
}

type Config struct {
	Bucket string
	// Region is the AWS region for the bucket.
	Region string
	// Endpoint is an optional custom endpoint (MinIO, LocalStack).
	Endpoint string
	// UsePathStyle enables path-style addressing (required for MinIO).
	UsePathStyle bool
}

type Store struct {
	client *s3.Client
	bucket string
}

func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	if cfg.UsePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	return &Store{
		client: s3.NewFromConfig(awsCfg, s3Opts...),
		bucket: cfg.Bucket,
	}, nil
}

// NewStoreWithClient is used by tests to inject a pre-configured client.
func NewStoreWithClient(client *s3.Client, bucket string) *Store {
	return &Store{client: client, bucket: bucket}
}

// ProgressFunc receives upload progress as an integer percentage, 0-100.
type ProgressFunc func(percent int)

// Upload streams a file into the store under folder/<mediaId>/<name>
// and returns the generated media ID. progress may be nil.
func (s *Store) Upload(ctx context.Context, folder, fileName, contentType string, body io.Reader, size int64, progress ProgressFunc) (string, error) {
	if !AllowedFolders[folder] {
		return "", fmt.Errorf("unknown media folder %q", folder)
	}

	mediaID := uuid.NewString()
	key := fmt.Sprintf("%s/%s/%s", folder, mediaID, fileName)

	reader := body
	if progress != nil && size > 0 {
		reader = &progressReader{r: body, total: size, report: progress}
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload media: %w", err)
	}

	if progress != nil {
		progress(100)
	}
	return mediaID, nil
}

// Delete removes every object stored under a media ID's prefix.
func (s *Store) Delete(ctx context.Context, folder, mediaID string) error {
	prefix := fmt.Sprintf("%s/%s/", folder, mediaID)

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("failed to list media objects: %w", err)
		}
		for _, obj := range page.Contents {
			if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    obj.Key,
			}); err != nil {
				return fmt.Errorf("failed to delete media object: %w", err)
			}
		}
	}
	return nil
}

type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	last   int
	report ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)

	percent := int(p.read * 100 / p.total)
	if percent > 100 {
		percent = 100
	}
	if percent != p.last {
		p.last = percent
		p.report(percent)
	}
	return n, err
}
