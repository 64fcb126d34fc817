package s3

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
	}{
		{
			name: "static credentials and endpoint",
			opts: Options{
				Region:       "us-east-1",
				Endpoint:     "http://127.0.0.1:9000",
				UsePathStyle: true,
				AccessKey:    "test-access-key",
				SecretKey:    "test-secret-key",
			},
		},
		{
			name: "default chain",
			opts: Options{Region: "eu-west-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := NewClient(context.Background(), tt.opts)
			require.NoError(t, err)
			require.NotNil(t, client)
			assert.Equal(t, tt.opts.Region, client.Region())
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("something went wrong"), false},
		{"NoSuchBucket typed", &types.NoSuchBucket{}, true},
		{"NotFound typed", &types.NotFound{}, true},
		{"NotFound code", &smithy.GenericAPIError{Code: "NotFound"}, true},
		{"404 code", &smithy.GenericAPIError{Code: "404"}, true},
		{"AccessDenied code", &smithy.GenericAPIError{Code: "AccessDenied"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNotFoundError(tt.err))
		})
	}
}
