package provisioning

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/oneliner/internal/platform/aws"
	"github.com/imamik/oneliner/internal/util/poll"
)

// Kind classifies provisioning errors.
type Kind string

// Error kinds.
const (
	// KindProvider is a failed EC2 or S3 call.
	KindProvider Kind = "provider"
	// KindResolution is a failed caller IP lookup.
	KindResolution Kind = "resolution"
	// KindIO is a failed local file read or write.
	KindIO Kind = "io"
	// KindState is a response lacking expected records, or a phase that did
	// not record a declared output.
	KindState Kind = "state"
	// KindTimeout is a readiness poll that exceeded its timeout.
	KindTimeout Kind = "timeout"
)

// Error is a classified provisioning error.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// ProviderError wraps a failed provider call. Responses that were missing an
// expected record are classified as state errors instead.
func ProviderError(op string, err error) error {
	if errors.Is(err, aws.ErrMissingRecord) {
		return &Error{Kind: KindState, Op: op, Err: err}
	}
	return &Error{Kind: KindProvider, Op: op, Err: err}
}

// ResolutionError wraps a failed caller IP lookup.
func ResolutionError(op string, err error) error {
	return &Error{Kind: KindResolution, Op: op, Err: err}
}

// IOError wraps a failed file operation.
func IOError(op string, err error) error {
	return &Error{Kind: KindIO, Op: op, Err: err}
}

// StateErrorf returns a state error with a formatted message.
func StateErrorf(format string, args ...any) error {
	return &Error{Kind: KindState, Err: fmt.Errorf(format, args...)}
}

// waitError classifies an error returned by poll.Until.
func waitError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case poll.IsTimeout(err):
		return &Error{Kind: KindTimeout, Op: "wait for " + op, Err: err}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("wait for %s: %w", op, err)
	default:
		return ProviderError("wait for "+op, err)
	}
}

// PhaseError reports the phase that stopped a pipeline run.
type PhaseError struct {
	Phase string
	Index int
	Err   error
}

// Error implements the error interface.
func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s phase failed: %v", e.Phase, e.Err)
}

// Unwrap returns the underlying error.
func (e *PhaseError) Unwrap() error {
	return e.Err
}
