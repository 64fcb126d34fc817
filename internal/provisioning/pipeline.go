package provisioning

import (
	"fmt"
	"time"
)

// Pipeline runs phases in order and stops at the first failure.
type Pipeline struct {
	Phases []Phase
}

// NewPipeline creates a pipeline from phases.
func NewPipeline(phases ...Phase) *Pipeline {
	return &Pipeline{Phases: phases}
}

// Run validates the phase order, then executes each phase. It returns a
// *PhaseError for the first phase that fails; later phases never run.
// Nothing created before the failure is cleaned up.
func (p *Pipeline) Run(ctx *Context) error {
	warnings, err := p.check()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		ctx.Observer.Event(Event{
			Type:    EventValidationWarning,
			Message: w.Message,
			Fields:  map[string]string{"field": w.Field},
		})
	}

	start := time.Now()
	ctx.Observer.Printf("Starting provisioning with %d phases...", len(p.Phases))

	for i, phase := range p.Phases {
		if err := ctx.Err(); err != nil {
			return &PhaseError{Phase: phase.Name(), Index: i, Err: err}
		}

		phaseStart := time.Now()
		LogPhaseStart(ctx.Observer, phase.Name())
		ctx.Observer.Progress(phase.Name(), i+1, len(p.Phases))

		err := phase.Provision(ctx)
		if err == nil {
			err = checkOutputs(ctx.State, phase)
		}
		duration := time.Since(phaseStart)

		if err != nil {
			ctx.Metrics.ObservePhase(phase.Name(), ResultError, duration)
			LogPhaseFailed(ctx.Observer, phase.Name(), err)
			return &PhaseError{Phase: phase.Name(), Index: i, Err: err}
		}

		ctx.Metrics.ObservePhase(phase.Name(), ResultSuccess, duration)
		LogPhaseComplete(ctx.Observer, phase.Name(), duration)
	}

	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}

// checkOutputs verifies a phase recorded every key it declares.
func checkOutputs(state *State, phase Phase) error {
	for _, key := range phase.Produces() {
		if !state.Has(key) {
			return StateErrorf("phase %s did not record %s", phase.Name(), key)
		}
	}
	return nil
}

// describe returns a short positional label for a phase in error messages.
func describe(i int, phase Phase) string {
	return fmt.Sprintf("phase %d (%s)", i+1, phase.Name())
}
