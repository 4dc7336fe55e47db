package store

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/shahparag-spring2021/webapp/internal/config"
	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/models"
)

const defaultContentType = "application/octet-stream"

// minioClient is the subset of *minio.Client used by [minioBlobStorage].
type minioClient interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
}

// minioBlobStorage keeps image content in an S3-compatible bucket.
type minioBlobStorage struct {
	client minioClient
	bucket string
	region string
	logger *logger.Logger
}

// NewMinioBlobStorage connects to the S3-compatible endpoint in cfg and
// creates the bucket when it does not exist yet.
func NewMinioBlobStorage(ctx context.Context, cfg config.Objects, log *logger.Logger) (BlobStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		log.Err(err).Str("func", "NewMinioBlobStorage").Str("endpoint", cfg.Endpoint).Msg("cannot create minio client")
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	storage := &minioBlobStorage{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		logger: log,
	}
	if err = storage.ensureBucket(ctx); err != nil {
		return nil, err
	}

	return storage, nil
}

func (s *minioBlobStorage) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", s.bucket, err)
	}
	if exists {
		return nil
	}

	if err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", s.bucket, err)
	}
	s.logger.Info().Str("bucket", s.bucket).Msg("bucket created")

	return nil
}

func (s *minioBlobStorage) Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) error {
	if !isValidKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidObjectKey, key)
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	if _, err := s.client.PutObject(ctx, s.bucket, key, content, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*minioBlobStorage.Put").Str("key", key).Msg("error uploading object")
		return fmt.Errorf("failed to upload object %q: %w", key, err)
	}

	return nil
}

func (s *minioBlobStorage) Delete(ctx context.Context, key string) error {
	if !isValidKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidObjectKey, key)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*minioBlobStorage.Delete").Str("key", key).Msg("error removing object")
		return fmt.Errorf("failed to remove object %q: %w", key, err)
	}

	return nil
}

// DeletePrefix removes objects one by one and stops at the first failure.
func (s *minioBlobStorage) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	if !isValidPrefix(prefix) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidObjectKey, prefix)
	}

	objects, err := s.List(ctx, prefix)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, object := range objects {
		if err = s.Delete(ctx, object.Key); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}

func (s *minioBlobStorage) List(ctx context.Context, prefix string) ([]models.BlobInfo, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	result := make([]models.BlobInfo, 0)
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if object.Err != nil {
			logger.FromContext(ctx).Err(object.Err).Str("func", "*minioBlobStorage.List").Str("prefix", prefix).Msg("error listing objects")
			return nil, fmt.Errorf("failed to list objects: %w", object.Err)
		}
		result = append(result, models.BlobInfo{
			Key:          object.Key,
			Size:         object.Size,
			LastModified: object.LastModified,
		})
	}

	return result, nil
}
