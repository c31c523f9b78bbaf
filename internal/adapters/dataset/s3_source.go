package dataset

import (
	"context"
	"fmt"
	"io"
	"log"
	"mappulator-service/internal/domain"
	"mappulator-service/internal/platform/obs"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Options locates the dataset object in S3-compatible storage.
type S3Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	Key       string
}

// S3Source reads the dataset JSON from a MinIO/S3 object.
type S3Source struct {
	client *minio.Client
	bucket string
	key    string
}

// NewS3Source connects to the storage endpoint. No request is made until LoadPOIs.
func NewS3Source(opts S3Options) (*S3Source, error) {
	if opts.Endpoint == "" || opts.AccessKey == "" || opts.SecretKey == "" {
		return nil, fmt.Errorf("new s3 source: endpoint, access key and secret key are required")
	}
	if opts.Bucket == "" || opts.Key == "" {
		return nil, fmt.Errorf("new s3 source: bucket and key are required")
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("new s3 source: create minio client: %w", err)
	}

	return &S3Source{client: client, bucket: opts.Bucket, key: opts.Key}, nil
}

func (s *S3Source) LoadPOIs(ctx context.Context) (_ []domain.PointOfInterest, err error) {
	defer obs.Time(ctx, "dataset.s3.LoadPOIs")(&err)

	object, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("load dataset: get object %s/%s: %w", s.bucket, s.key, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("load dataset: read object %s/%s: %w", s.bucket, s.key, err)
	}

	pois, err := ParseJSON(data)
	if err != nil {
		return nil, err
	}

	log.Printf("dataset loaded source=s3 bucket=%s key=%s count=%d", s.bucket, s.key, len(pois))
	return pois, nil
}
