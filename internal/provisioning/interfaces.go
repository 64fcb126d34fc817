package provisioning

import "context"

// Logger is the minimal printf-style logging interface.
type Logger interface {
	Printf(format string, v ...any)
}

// Phase defines the interface for a provisioning phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Requires lists the state keys this phase reads.
	Requires() []StateKey

	// Produces lists the state keys this phase records on success.
	Produces() []StateKey

	// Provision executes the provisioning logic for this phase.
	Provision(ctx *Context) error
}

// ArtifactWriter persists the connection artifacts of a run.
// Implemented by internal/artifacts.Writer.
type ArtifactWriter interface {
	// WritePrivateKey stores key material for the named key pair with
	// owner-only permissions and returns the file path.
	WritePrivateKey(keyName string, key []byte) (string, error)

	// WriteInventory stores the inventory file and returns its path.
	WriteInventory(content string) (string, error)
}

// ArtifactMirror copies an artifact to remote storage.
// Implemented by internal/artifacts.S3Mirror.
type ArtifactMirror interface {
	// Mirror uploads data under name and returns its remote location.
	Mirror(ctx context.Context, name string, data []byte) (string, error)
}
