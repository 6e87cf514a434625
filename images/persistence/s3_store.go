package persistence

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/dfryer1193/imgserve/images/domain"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var _ domain.ImageStore = (*S3ImageStore)(nil)

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	PathStyle bool
}

// S3ImageStore keeps one object per key in a single bucket.
type S3ImageStore struct {
	cl     *minio.Client
	bucket string
	region string
}

func NewS3ImageStore(cfg S3Config) (*S3ImageStore, error) {
	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	}
	if cfg.PathStyle {
		opts.BucketLookup = minio.BucketLookupPath
	}

	cl, err := minio.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	return &S3ImageStore{
		cl:     cl,
		bucket: cfg.Bucket,
		region: cfg.Region,
	}, nil
}

// Init creates the bucket if it does not exist yet.
func (s *S3ImageStore) Init(ctx context.Context) error {
	exists, err := s.cl.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}

	if err := s.cl.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Ping checks that the bucket exists without creating it.
func (s *S3ImageStore) Ping(ctx context.Context) error {
	exists, err := s.cl.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}

func (s *S3ImageStore) Exists(ctx context.Context, key domain.Key) (bool, error) {
	_, err := s.cl.StatObject(ctx, s.bucket, key.Name, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object: %w", err)
	}
	return true, nil
}

// Write uploads r as the new object for key. S3 PUTs replace objects
// atomically. The body is buffered so the PUT carries a known length; an
// unknown length makes the client allocate a full multipart part.
func (s *S3ImageStore) Write(ctx context.Context, key domain.Key, r io.Reader) (int64, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read image: %w", err)
	}

	info, err := s.cl.PutObject(ctx, s.bucket, key.Name, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: key.Format.ContentType(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to put object: %w", err)
	}
	return info.Size, nil
}

func (s *S3ImageStore) Read(ctx context.Context, key domain.Key) (io.ReadCloser, error) {
	if _, err := s.cl.StatObject(ctx, s.bucket, key.Name, minio.StatObjectOptions{}); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to stat object: %w", err)
	}

	obj, err := s.cl.GetObject(ctx, s.bucket, key.Name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	return obj, nil
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.StatusCode == http.StatusNotFound || resp.Code == "NoSuchKey"
}
