package testing

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/imamik/oneliner/internal/provisioning"
)

var (
	_ provisioning.ArtifactWriter = (*MockArtifactWriter)(nil)
	_ provisioning.ArtifactMirror = (*MockArtifactMirror)(nil)
)

// MockArtifactWriter is a mock implementation of provisioning.ArtifactWriter.
type MockArtifactWriter struct {
	mock.Mock
}

// WritePrivateKey records the call and returns the configured path.
func (m *MockArtifactWriter) WritePrivateKey(keyName string, key []byte) (string, error) {
	args := m.Called(keyName, key)
	return args.String(0), args.Error(1)
}

// WriteInventory records the call and returns the configured path.
func (m *MockArtifactWriter) WriteInventory(content string) (string, error) {
	args := m.Called(content)
	return args.String(0), args.Error(1)
}

// MockArtifactMirror is a mock implementation of provisioning.ArtifactMirror.
type MockArtifactMirror struct {
	mock.Mock
}

// Mirror records the call and returns the configured location.
func (m *MockArtifactMirror) Mirror(ctx context.Context, name string, data []byte) (string, error) {
	args := m.Called(ctx, name, data)
	return args.String(0), args.Error(1)
}
