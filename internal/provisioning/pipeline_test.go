package provisioning

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(observer Observer) *Context {
	return &Context{
		Context:  context.Background(),
		State:    NewState(),
		Observer: observer,
	}
}

func TestNewPipeline(t *testing.T) {
	t.Parallel()
	p1 := phaseFunc("phase-1", nil)
	p2 := phaseFunc("phase-2", nil)

	pipeline := NewPipeline(p1, p2)

	require.NotNil(t, pipeline)
	assert.Len(t, pipeline.Phases, 2)
	assert.Equal(t, "phase-1", pipeline.Phases[0].Name())
	assert.Equal(t, "phase-2", pipeline.Phases[1].Name())
}

func TestNewPipeline_Empty(t *testing.T) {
	t.Parallel()
	pipeline := NewPipeline()

	require.NotNil(t, pipeline)
	assert.Empty(t, pipeline.Phases)
}

func TestPipeline_Run_Success(t *testing.T) {
	t.Parallel()
	executed := make([]string, 0)
	ctx := newTestContext(NewMockObserver())

	pipeline := NewPipeline(
		producer("vpc", KeyVPCID, "vpc-1", &executed),
		producer("subnets", KeySubnetIDs, "subnet-1", &executed, KeyVPCID),
		producer("instance", KeyInstanceID, "i-1", &executed, KeySubnetIDs),
	)

	err := pipeline.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"vpc", "subnets", "instance"}, executed)
	assert.Equal(t, []StateKey{KeyVPCID, KeySubnetIDs, KeyInstanceID}, recordedKeys(ctx.State))
}

func TestPipeline_Run_StopsOnError(t *testing.T) {
	t.Parallel()
	executed := make([]string, 0)
	ctx := newTestContext(NewMockObserver())

	pipeline := NewPipeline(
		producer("vpc", KeyVPCID, "vpc-1", &executed),
		phaseFunc("instance", func(_ *Context) error { return fmt.Errorf("out of capacity") }, KeyInstanceID),
		producer("public-ip", KeyPublicIP, "203.0.113.1", &executed, KeyInstanceID),
	)

	err := pipeline.Run(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "instance phase failed")
	assert.Contains(t, err.Error(), "out of capacity")

	var phaseErr *PhaseError
	require.ErrorAs(t, err, &phaseErr)
	assert.Equal(t, "instance", phaseErr.Phase)
	assert.Equal(t, 1, phaseErr.Index)

	// public-ip should NOT have executed or written anything
	assert.Equal(t, []string{"vpc"}, executed)
	assert.False(t, ctx.State.Has(KeyPublicIP))
	assert.Equal(t, []StateKey{KeyVPCID}, recordedKeys(ctx.State))
}

func TestPipeline_Run_PreservesErrorKind(t *testing.T) {
	t.Parallel()
	ctx := newTestContext(NewMockObserver())

	pipeline := NewPipeline(
		phaseFunc("instance", func(_ *Context) error {
			return StateErrorf("no instances launched from image %s", "ami-1")
		}, KeyInstanceID),
	)

	err := pipeline.Run(ctx)

	require.Error(t, err)
	assert.Equal(t, KindState, KindOf(err))
	assert.Contains(t, err.Error(), "no instances launched from image ami-1")
}

func TestPipeline_Run_MissingOutputIsStateError(t *testing.T) {
	t.Parallel()
	ctx := newTestContext(NewMockObserver())

	pipeline := NewPipeline(
		phaseFunc("vpc", func(_ *Context) error { return nil }, KeyVPCID),
	)

	err := pipeline.Run(ctx)

	require.Error(t, err)
	assert.Equal(t, KindState, KindOf(err))
	assert.Contains(t, err.Error(), "did not record vpc_id")
}

func TestPipeline_Run_CancelledContext(t *testing.T) {
	t.Parallel()
	executed := make([]string, 0)
	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	ctx := newTestContext(NewMockObserver())
	ctx.Context = cctx

	err := NewPipeline(producer("vpc", KeyVPCID, "vpc-1", &executed)).Run(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, executed)
}

func TestPipeline_Run_EmptyPipeline(t *testing.T) {
	t.Parallel()
	ctx := newTestContext(NewMockObserver())

	pipeline := NewPipeline()
	err := pipeline.Run(ctx)

	require.NoError(t, err)
}

func TestPipeline_Run_InvalidOrderRunsNothing(t *testing.T) {
	t.Parallel()
	executed := make([]string, 0)
	ctx := newTestContext(NewMockObserver())

	pipeline := NewPipeline(
		producer("subnets", KeySubnetIDs, "subnet-1", &executed, KeyVPCID),
		producer("vpc", KeyVPCID, "vpc-1", &executed),
	)

	err := pipeline.Run(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires vpc_id")
	assert.Empty(t, executed)
}

func TestPipeline_Run_LogsPhaseEvents(t *testing.T) {
	t.Parallel()
	observer := NewMockObserver()
	ctx := newTestContext(observer)

	pipeline := NewPipeline(
		phaseFunc("test", func(c *Context) error { return c.State.SetString(KeyVPCID, "vpc-1") }, KeyVPCID),
	)

	err := pipeline.Run(ctx)

	require.NoError(t, err)

	// Should have phase start and phase complete events
	var hasStart, hasComplete bool
	for _, event := range observer.events {
		if event.Type == EventPhaseStarted {
			hasStart = true
		}
		if event.Type == EventPhaseCompleted {
			hasComplete = true
		}
	}
	assert.True(t, hasStart, "should log phase start event")
	assert.True(t, hasComplete, "should log phase complete event")
}

func TestPipeline_Run_LogsFailure(t *testing.T) {
	t.Parallel()
	observer := NewMockObserver()
	ctx := newTestContext(observer)

	pipeline := NewPipeline(
		phaseFunc("failing", func(_ *Context) error { return fmt.Errorf("boom") }, KeyVPCID),
	)

	_ = pipeline.Run(ctx)

	var hasFailed bool
	for _, event := range observer.events {
		if event.Type == EventPhaseFailed {
			hasFailed = true
		}
	}
	assert.True(t, hasFailed, "should log phase failed event")
}

func TestPipeline_Run_RecordsMetrics(t *testing.T) {
	t.Parallel()
	executed := make([]string, 0)
	ctx := newTestContext(NewMockObserver())
	ctx.Metrics = NewMetrics()

	err := NewPipeline(
		producer("vpc", KeyVPCID, "vpc-1", &executed),
		phaseFunc("subnets", func(_ *Context) error { return errors.New("boom") }, KeySubnetIDs),
	).Run(ctx)
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "oneliner.prom")
	require.NoError(t, ctx.Metrics.WriteToTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), `oneliner_provisioning_phase_duration_seconds_count{phase="vpc",result="success"} 1`)
	assert.Contains(t, string(data), `oneliner_provisioning_phase_duration_seconds_count{phase="subnets",result="error"} 1`)
}

// phaseFunc creates a Phase from a function for testing.
type phaseFuncImpl struct {
	name     string
	fn       func(*Context) error
	requires []StateKey
	produces []StateKey
}

func phaseFunc(name string, fn func(*Context) error, produces ...StateKey) *phaseFuncImpl {
	return &phaseFuncImpl{name: name, fn: fn, produces: produces}
}

// producer returns a phase that records value under key and appends its name to executed.
func producer(name string, key StateKey, value string, executed *[]string, requires ...StateKey) Phase {
	p := phaseFunc(name, func(ctx *Context) error {
		*executed = append(*executed, name)
		return ctx.State.SetString(key, value)
	}, key)
	p.requires = requires
	return p
}

func (p *phaseFuncImpl) Name() string                 { return p.name }
func (p *phaseFuncImpl) Requires() []StateKey         { return p.requires }
func (p *phaseFuncImpl) Produces() []StateKey         { return p.produces }
func (p *phaseFuncImpl) Provision(ctx *Context) error { return p.fn(ctx) }

func recordedKeys(s *State) []StateKey {
	var keys []StateKey
	for _, e := range s.Snapshot() {
		keys = append(keys, e.Key)
	}
	return keys
}
