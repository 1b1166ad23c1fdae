package form

import (
	"fmt"
	"slices"
)

// StepContext partitions a schema's fields into wizard steps. Step indexes
// are zero-based. Required and optional field lists are advisory metadata
// for hosts (progress badges, skip buttons); every name in them must also
// appear in the step's field list.
type StepContext struct {
	CurrentStep    int
	TotalSteps     int
	StepFields     map[int][]string
	RequiredFields map[int][]string
	OptionalFields map[int][]string
}

// Fields returns the ordered field names of a step, nil for unknown steps.
func (sc StepContext) Fields(step int) []string {
	return sc.StepFields[step]
}

// Required returns the advisory required-field list of a step.
func (sc StepContext) Required(step int) []string {
	return sc.RequiredFields[step]
}

// Optional returns the advisory optional-field list of a step.
func (sc StepContext) Optional(step int) []string {
	return sc.OptionalFields[step]
}

// validate enforces the partition invariants against the declared fields.
func (sc StepContext) validate(has func(string) bool) error {
	for step, fields := range sc.StepFields {
		if step < 0 || (sc.TotalSteps > 0 && step >= sc.TotalSteps) {
			return fmt.Errorf("%w: step %d outside 0..%d", ErrInvalidStepPartition, step, sc.TotalSteps-1)
		}
		for _, f := range fields {
			if !has(f) {
				return fmt.Errorf("%w: step %d references undeclared field %q", ErrInvalidStepPartition, step, f)
			}
		}
		for _, f := range sc.RequiredFields[step] {
			if !slices.Contains(fields, f) {
				return fmt.Errorf("%w: required field %q not in step %d", ErrInvalidStepPartition, f, step)
			}
		}
		for _, f := range sc.OptionalFields[step] {
			if !slices.Contains(fields, f) {
				return fmt.Errorf("%w: optional field %q not in step %d", ErrInvalidStepPartition, f, step)
			}
		}
	}

	for step := range sc.RequiredFields {
		if _, ok := sc.StepFields[step]; !ok {
			return fmt.Errorf("%w: required fields declared for unknown step %d", ErrInvalidStepPartition, step)
		}
	}
	for step := range sc.OptionalFields {
		if _, ok := sc.StepFields[step]; !ok {
			return fmt.Errorf("%w: optional fields declared for unknown step %d", ErrInvalidStepPartition, step)
		}
	}

	return nil
}
