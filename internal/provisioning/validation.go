package provisioning

import (
	"fmt"
	"strings"
)

// ValidationError represents a phase ordering error or warning.
type ValidationError struct {
	Field    string // Phase or key that failed validation
	Message  string // Human-readable error message
	Severity string // "error" or "warning"
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", ve.Severity, ve.Field, ve.Message)
}

// IsError returns true if this is an error (not a warning).
func (ve ValidationError) IsError() bool {
	return ve.Severity == "error"
}

// Validate checks that every phase's inputs are produced by an earlier phase
// and that no key is produced twice. It makes no provider calls.
func (p *Pipeline) Validate() error {
	_, err := p.check()
	return err
}

// check runs all validation checks, returning the warnings and, when any
// error was found, a combined error.
func (p *Pipeline) check() ([]ValidationError, error) {
	allErrors := validatePhases(p.Phases)

	var errs []ValidationError
	var warnings []ValidationError
	for _, ve := range allErrors {
		if ve.IsError() {
			errs = append(errs, ve)
		} else {
			warnings = append(warnings, ve)
		}
	}

	if len(errs) > 0 {
		var errMsgs []string
		for _, e := range errs {
			errMsgs = append(errMsgs, e.Error())
		}
		return warnings, fmt.Errorf("phase order validation failed:\n  %s", strings.Join(errMsgs, "\n  "))
	}
	return warnings, nil
}

// validatePhases returns every problem found in the phase list.
func validatePhases(phases []Phase) []ValidationError {
	var errs []ValidationError
	names := make(map[string]int)
	producedBy := make(map[StateKey]string)

	for i, phase := range phases {
		label := describe(i, phase)

		if phase.Name() == "" {
			errs = append(errs, ValidationError{
				Field:    fmt.Sprintf("phase %d", i+1),
				Message:  "phase name is required",
				Severity: "error",
			})
		} else if prev, ok := names[phase.Name()]; ok {
			errs = append(errs, ValidationError{
				Field:    label,
				Message:  fmt.Sprintf("duplicate phase name, first used by phase %d", prev+1),
				Severity: "error",
			})
		} else {
			names[phase.Name()] = i
		}

		for _, key := range phase.Requires() {
			if _, ok := producedBy[key]; !ok {
				errs = append(errs, ValidationError{
					Field:    label,
					Message:  fmt.Sprintf("requires %s, which no earlier phase produces", key),
					Severity: "error",
				})
			}
		}

		if len(phase.Produces()) == 0 {
			errs = append(errs, ValidationError{
				Field:    label,
				Message:  "phase records no state",
				Severity: "warning",
			})
		}
		for _, key := range phase.Produces() {
			if owner, ok := producedBy[key]; ok {
				errs = append(errs, ValidationError{
					Field:    label,
					Message:  fmt.Sprintf("%s is already produced by %s", key, owner),
					Severity: "error",
				})
				continue
			}
			producedBy[key] = phase.Name()
		}
	}

	return errs
}
