package provisioning

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/imamik/oneliner/internal/config"
	"github.com/imamik/oneliner/internal/platform/aws"
	"github.com/imamik/oneliner/internal/util/poll"
	"github.com/imamik/oneliner/internal/util/tags"
)

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config    *config.Config
	State     *State
	Infra     aws.InfrastructureManager
	Artifacts ArtifactWriter
	Mirror    ArtifactMirror // nil disables remote copies of artifacts
	Observer  Observer
	Timeouts  *config.Timeouts
	Metrics   *Metrics
	RunID     string
}

// NewContext creates a new provisioning context with a fresh run id.
// The observer logs through the logr.Logger carried by ctx, if any.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	infra aws.InfrastructureManager,
	artifacts ArtifactWriter,
) *Context {
	runID := uuid.NewString()
	log := logr.FromContextOrDiscard(ctx).WithValues("run_id", runID)
	return &Context{
		Context:   ctx,
		Config:    cfg,
		State:     NewState(),
		Infra:     infra,
		Artifacts: artifacts,
		Observer:  NewLogObserver(log),
		Timeouts:  config.LoadTimeouts(),
		Metrics:   NewMetrics(),
		RunID:     runID,
	}
}

// TagBuilder returns a tag builder for a resource named name, carrying the run id.
func (c *Context) TagBuilder(name string) *tags.TagBuilder {
	return tags.NewTagBuilder(name).WithRunIDIfSet(c.RunID)
}

// NameResource applies the standard tag set for name to a resource.
func (c *Context) NameResource(resourceID, name string) error {
	return c.ApplyTags(resourceID, c.TagBuilder(name).Build())
}

// ApplyTags applies resourceTags to a resource.
func (c *Context) ApplyTags(resourceID string, resourceTags map[string]string) error {
	if err := c.Infra.TagResource(c, resourceID, resourceTags); err != nil {
		return ProviderError("tag "+resourceID, err)
	}
	return nil
}

// WaitUntil polls cond until it reports ready. Timeouts are reported as
// KindTimeout errors and condition errors as provider errors.
func (c *Context) WaitUntil(resourceType, resourceID string, interval, timeout time.Duration, cond poll.Condition) error {
	target := resourceType + " " + resourceID
	err := poll.Until(c, interval, timeout, cond, poll.WithOnAttempt(func(attempt int) {
		c.Metrics.PollAttempt(resourceType)
		c.Observer.Printf("Waiting for %s (attempt %d)", target, attempt)
	}))
	return waitError(target, err)
}

// Record stores a single identifier in State.
func (c *Context) Record(key StateKey, value string) error {
	if err := c.State.SetString(key, value); err != nil {
		return &Error{Kind: KindState, Op: "record " + string(key), Err: err}
	}
	return nil
}

// RecordAll stores an ordered list of identifiers in State.
func (c *Context) RecordAll(key StateKey, values []string) error {
	if err := c.State.SetStrings(key, values); err != nil {
		return &Error{Kind: KindState, Op: "record " + string(key), Err: err}
	}
	return nil
}
