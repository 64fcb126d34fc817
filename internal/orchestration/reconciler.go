package orchestration

import (
	"context"
	"fmt"

	"github.com/imamik/oneliner/internal/config"
	"github.com/imamik/oneliner/internal/platform/aws"
	"github.com/imamik/oneliner/internal/provisioning"
	"github.com/imamik/oneliner/internal/provisioning/compute"
	"github.com/imamik/oneliner/internal/provisioning/infrastructure"
	"github.com/imamik/oneliner/internal/provisioning/inventory"
)

// MirrorFactory builds the artifact mirror for a run.
type MirrorFactory func(ctx context.Context, runID string) (provisioning.ArtifactMirror, error)

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithTimeouts overrides the polling settings loaded from the environment.
func WithTimeouts(t *config.Timeouts) Option {
	return func(r *Reconciler) {
		r.timeouts = t
	}
}

// WithMirror enables mirroring of artifacts through the mirror built by factory.
func WithMirror(factory MirrorFactory) Option {
	return func(r *Reconciler) {
		r.mirrorFactory = factory
	}
}

// Result describes a finished or aborted run.
type Result struct {
	RunID   string
	State   *provisioning.State
	Metrics *provisioning.Metrics
}

// Reconciler orchestrates the provisioning workflow.
type Reconciler struct {
	infra     aws.InfrastructureManager
	artifacts provisioning.ArtifactWriter
	config    *config.Config

	timeouts      *config.Timeouts
	mirrorFactory MirrorFactory
}

// NewReconciler creates a new orchestration reconciler.
func NewReconciler(
	infra aws.InfrastructureManager,
	artifacts provisioning.ArtifactWriter,
	cfg *config.Config,
	opts ...Option,
) *Reconciler {
	r := &Reconciler{
		infra:     infra,
		artifacts: artifacts,
		config:    cfg,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Phases returns every phase of a run in execution order.
func Phases() []provisioning.Phase {
	var phases []provisioning.Phase
	phases = append(phases, infrastructure.Phases()...)
	phases = append(phases, compute.Phases()...)
	phases = append(phases, inventory.NewPhase())
	return phases
}

// Reconcile runs all phases once. The result is non-nil even when a phase
// fails, so callers can report the identifiers recorded before the failure.
func (r *Reconciler) Reconcile(ctx context.Context) (*Result, error) {
	pCtx := provisioning.NewContext(ctx, r.config, r.infra, r.artifacts)
	if r.timeouts != nil {
		pCtx.Timeouts = r.timeouts
	}
	result := &Result{
		RunID:   pCtx.RunID,
		State:   pCtx.State,
		Metrics: pCtx.Metrics,
	}

	if r.mirrorFactory != nil {
		mirror, err := r.mirrorFactory(ctx, pCtx.RunID)
		if err != nil {
			return result, fmt.Errorf("failed to set up artifact mirror: %w", err)
		}
		pCtx.Mirror = mirror
	}

	pCtx.Observer.Printf("Starting provisioning run %s", pCtx.RunID)
	if err := provisioning.NewPipeline(Phases()...).Run(pCtx); err != nil {
		return result, err
	}
	return result, nil
}
