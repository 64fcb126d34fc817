package testing

import (
	"context"
	"testing"
	"time"

	"github.com/imamik/oneliner/internal/config"
	"github.com/imamik/oneliner/internal/platform/aws"
	"github.com/imamik/oneliner/internal/provisioning"
)

// TestContext returns a context with a reasonable timeout for tests.
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// FastTimeouts returns polling settings suited to tests.
func FastTimeouts() *config.Timeouts {
	return &config.Timeouts{
		NetworkPollInterval:  time.Millisecond,
		Network:              2 * time.Second,
		InstancePollInterval: time.Millisecond,
		Instance:             2 * time.Second,
		IPEcho:               time.Second,
	}
}

// NewProvisioningContext builds a provisioning context for phase tests with
// fast polling. A nil cfg uses MinimalConfig.
func NewProvisioningContext(t *testing.T, cfg *config.Config, infra aws.InfrastructureManager, artifacts provisioning.ArtifactWriter) *provisioning.Context {
	t.Helper()
	if cfg == nil {
		cfg = MinimalConfig()
	}
	ctx := provisioning.NewContext(TestContext(t), cfg, infra, artifacts)
	ctx.Timeouts = FastTimeouts()
	return ctx
}
