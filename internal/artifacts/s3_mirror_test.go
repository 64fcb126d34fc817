package artifacts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/imamik/oneliner/internal/config"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) PutObject(ctx context.Context, bucketName, key string, data []byte) error {
	args := m.Called(ctx, bucketName, key, data)
	return args.Error(0)
}

func TestS3Mirror_Mirror(t *testing.T) {
	t.Parallel()
	store := &mockStore{}
	store.On("BucketExists", mock.Anything, "artifacts").Return(true, nil)
	store.On("PutObject", mock.Anything, "artifacts", "oneliner/run-1/inventory", []byte("line\n")).Return(nil)
	m := NewS3Mirror(store, "artifacts", "oneliner", "run-1")

	location, err := m.Mirror(context.Background(), "inventory", []byte("line\n"))

	require.NoError(t, err)
	assert.Equal(t, "s3://artifacts/oneliner/run-1/inventory", location)
	store.AssertExpectations(t)
}

func TestS3Mirror_Key(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "run-1/inventory", NewS3Mirror(nil, "b", "", "run-1").Key("inventory"))
	assert.Equal(t, "a/b/run-1/inventory", NewS3Mirror(nil, "b", "a/b/", "run-1").Key("inventory"))
}

func TestS3Mirror_MissingBucket(t *testing.T) {
	t.Parallel()
	store := &mockStore{}
	store.On("BucketExists", mock.Anything, "artifacts").Return(false, nil)
	m := NewS3Mirror(store, "artifacts", "", "run-1")

	_, err := m.Mirror(context.Background(), "inventory", []byte("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket artifacts does not exist")
	store.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestS3Mirror_PutError(t *testing.T) {
	t.Parallel()
	store := &mockStore{}
	store.On("BucketExists", mock.Anything, "artifacts").Return(true, nil)
	store.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("AccessDenied"))
	m := NewS3Mirror(store, "artifacts", "", "run-1")

	_, err := m.Mirror(context.Background(), "inventory", []byte("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "AccessDenied")
}

func TestNewS3MirrorFromConfig(t *testing.T) {
	t.Setenv(EnvS3AccessKeyID, "test-key")
	t.Setenv(EnvS3SecretAccessKey, "test-secret")

	m, err := NewS3MirrorFromConfig(context.Background(), config.S3Config{
		Bucket:       "artifacts",
		Prefix:       "runs",
		Region:       "us-east-1",
		Endpoint:     "http://127.0.0.1:9000",
		UsePathStyle: true,
	}, "run-1")

	require.NoError(t, err)
	assert.Equal(t, "runs/run-1/inventory", m.Key("inventory"))
}
