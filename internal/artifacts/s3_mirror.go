package artifacts

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/imamik/oneliner/internal/config"
	"github.com/imamik/oneliner/internal/platform/s3"
)

// Environment variables holding static S3 credentials.
const (
	EnvS3AccessKeyID     = "ONELINER_S3_ACCESS_KEY_ID"
	EnvS3SecretAccessKey = "ONELINER_S3_SECRET_ACCESS_KEY"
)

// ObjectStore is the subset of the S3 client used by S3Mirror.
type ObjectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	PutObject(ctx context.Context, bucketName, key string, data []byte) error
}

// S3Mirror uploads artifacts to s3://<bucket>/<prefix>/<run-id>/<name>.
type S3Mirror struct {
	store  ObjectStore
	bucket string
	prefix string
	runID  string
}

// NewS3Mirror creates a mirror writing through store.
func NewS3Mirror(store ObjectStore, bucket, prefix, runID string) *S3Mirror {
	return &S3Mirror{store: store, bucket: bucket, prefix: prefix, runID: runID}
}

// NewS3MirrorFromConfig builds an S3 client from cfg and returns a mirror for
// runID. Static credentials are read from ONELINER_S3_ACCESS_KEY_ID and
// ONELINER_S3_SECRET_ACCESS_KEY when both are set.
func NewS3MirrorFromConfig(ctx context.Context, cfg config.S3Config, runID string) (*S3Mirror, error) {
	client, err := s3.NewClient(ctx, s3.Options{
		Region:       cfg.Region,
		Endpoint:     cfg.Endpoint,
		UsePathStyle: cfg.UsePathStyle,
		AccessKey:    os.Getenv(EnvS3AccessKeyID),
		SecretKey:    os.Getenv(EnvS3SecretAccessKey),
	})
	if err != nil {
		return nil, err
	}
	return NewS3Mirror(client, cfg.Bucket, cfg.Prefix, runID), nil
}

// Key returns the object key an artifact named name is stored under.
func (m *S3Mirror) Key(name string) string {
	return path.Join(m.prefix, m.runID, name)
}

// Mirror uploads data and returns its s3:// location.
func (m *S3Mirror) Mirror(ctx context.Context, name string, data []byte) (string, error) {
	exists, err := m.store.BucketExists(ctx, m.bucket)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("bucket %s does not exist", m.bucket)
	}

	key := m.Key(name)
	if err := m.store.PutObject(ctx, m.bucket, key, data); err != nil {
		return "", err
	}
	return fmt.Sprintf("s3://%s/%s", m.bucket, key), nil
}
