package form

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/tripfolio/formkit/pkg/async"
	"github.com/tripfolio/formkit/pkg/constraint"
)

// customFailureMessage stands in for a custom validator that threw instead
// of reporting: user-facing surfaces get one generic entry, never a panic.
const customFailureMessage = "Validation failed"

// CustomValidator checks something the static schema cannot express, such
// as uniqueness or external availability. It may block; the orchestrator
// runs it off the calling goroutine. Returning an error (or panicking)
// marks the field invalid with a generic message.
type CustomValidator func(ctx context.Context, value any) (FieldResult, error)

// Validator orchestrates validation for one form instance. It owns its
// schema and custom-validator registry; independent forms get independent
// validators and share nothing.
type Validator struct {
	schema *Schema

	mu     sync.Mutex
	custom map[string]CustomValidator
	seq    map[string]uint64
	states map[string]State
}

// New builds a validator for the schema, surfacing any misconfiguration
// recorded while the schema was built (duplicate fields, bad step partition).
func New(schema *Schema) (*Validator, error) {
	if schema == nil {
		return nil, ErrNilSchema
	}
	if err := schema.check(); err != nil {
		return nil, err
	}

	return &Validator{
		schema: schema,
		custom: make(map[string]CustomValidator),
		seq:    make(map[string]uint64),
		states: make(map[string]State),
	}, nil
}

// Schema returns the schema this validator was built around.
func (v *Validator) Schema() *Schema {
	return v.schema
}

// AddCustomValidator registers the custom validator for a declared field,
// replacing any previous registration for that field.
func (v *Validator) AddCustomValidator(name string, fn CustomValidator) error {
	if !v.schema.Has(name) {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if fn == nil {
		return fmt.Errorf("%w: %s", ErrNilValidatorFunc, name)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.custom[name] = fn
	return nil
}

// FieldState returns the field's current lifecycle state. Fields never
// validated report StateIdle.
func (v *Validator) FieldState(name string) State {
	v.mu.Lock()
	defer v.mu.Unlock()
	if s, ok := v.states[name]; ok {
		return s
	}
	return StateIdle
}

// ValidateField checks one field: its structural constraints first, then
// its custom validator if registered, with messages from both merged into
// one result. The only possible error is referencing an undeclared field.
func (v *Validator) ValidateField(ctx context.Context, name string, value any) (FieldResult, error) {
	cs, ok := v.schema.fields[name]
	if !ok {
		return FieldResult{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	seq := v.begin(name)

	var errs []string
	for _, c := range cs {
		errs = append(errs, c.Validate(value)...)
	}

	var warns []string
	if fn := v.customFor(name); fn != nil {
		res, err := v.runCustom(ctx, fn, value).Await(ctx)
		if err != nil {
			errs = append(errs, customFailureMessage)
		} else {
			errs = append(errs, res.Errors...)
			warns = append(warns, res.Warnings...)
			if !res.Valid && len(res.Errors) == 0 {
				errs = append(errs, customFailureMessage)
			}
		}
	}

	fr := FieldResult{Valid: len(errs) == 0, Errors: errs, Warnings: warns, State: StateValid}
	if !fr.Valid {
		fr.State = StateInvalid
	}
	v.settle(name, seq, fr.State)

	return fr, nil
}

// ValidateForm checks every declared field plus the cross-field
// constraints, running all registered custom validators concurrently and
// returning only once each has settled.
func (v *Validator) ValidateForm(ctx context.Context, data map[string]any) Result {
	return v.validateFields(ctx, v.schema.Fields(), data, v.schema.cross)
}

// ValidateStep checks only the fields of one wizard step; fields outside
// the step are ignored even when present and invalid in data. Cross-field
// constraints run when every field they read belongs to the step.
func (v *Validator) ValidateStep(ctx context.Context, step int, data map[string]any) (Result, error) {
	if v.schema.steps == nil {
		return Result{}, ErrNoSteps
	}
	fields, ok := v.schema.steps.StepFields[step]
	if !ok {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}

	var cross []constraint.Constraint
	for _, c := range v.schema.cross {
		inStep := true
		for _, f := range c.Fields() {
			if !slices.Contains(fields, f) {
				inStep = false
				break
			}
		}
		if inStep {
			cross = append(cross, c)
		}
	}

	return v.validateFields(ctx, fields, data, cross), nil
}

func (v *Validator) validateFields(ctx context.Context, fields []string, data map[string]any, cross []constraint.Constraint) Result {
	touched := make([]string, len(fields))
	copy(touched, fields)

	seqs := make(map[string]uint64, len(fields))
	for _, f := range fields {
		seqs[f] = v.begin(f)
	}

	errsBy := make(map[string][]string)
	warnsBy := make(map[string][]string)

	for _, f := range fields {
		for _, c := range v.schema.fields[f] {
			errsBy[f] = append(errsBy[f], c.Validate(data[f])...)
		}
	}

	for _, c := range cross {
		for f, msgs := range c.FieldErrors(data) {
			if slices.Contains(fields, f) {
				errsBy[f] = append(errsBy[f], msgs...)
			}
		}
	}

	// Custom validators run concurrently; the call settles when all have.
	var (
		customFields  []string
		customFutures []*async.Result[FieldResult]
	)
	for _, f := range fields {
		if fn := v.customFor(f); fn != nil {
			customFields = append(customFields, f)
			customFutures = append(customFutures, v.runCustom(ctx, fn, data[f]))
		}
	}
	for i, f := range customFields {
		res, err := customFutures[i].Await(ctx)
		switch {
		case err != nil:
			errsBy[f] = append(errsBy[f], customFailureMessage)
		default:
			errsBy[f] = append(errsBy[f], res.Errors...)
			warnsBy[f] = append(warnsBy[f], res.Warnings...)
			if !res.Valid && len(res.Errors) == 0 {
				errsBy[f] = append(errsBy[f], customFailureMessage)
			}
		}
	}

	result := Result{
		Valid:         true,
		Errors:        make(map[string][]string),
		Warnings:      make(map[string][]string),
		TouchedFields: touched,
	}
	for _, f := range fields {
		state := StateValid
		if len(errsBy[f]) > 0 {
			state = StateInvalid
			result.Errors[f] = errsBy[f]
			result.Valid = false
			if result.FirstErrorField == "" {
				result.FirstErrorField = f
			}
		}
		if len(warnsBy[f]) > 0 {
			result.Warnings[f] = warnsBy[f]
		}
		v.settle(f, seqs[f], state)
	}

	return result
}

// runCustom executes a custom validator on its own goroutine, converting
// panics into errors so a misbehaving host validator cannot crash the form.
func (v *Validator) runCustom(ctx context.Context, fn CustomValidator, value any) *async.Result[FieldResult] {
	return async.Run(ctx, func(ctx context.Context) (fr FieldResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("custom validator panicked: %v", r)
			}
		}()
		return fn(ctx, value)
	})
}

func (v *Validator) customFor(name string) CustomValidator {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.custom[name]
}

// begin marks the start of a validation pass for a field and returns the
// pass's sequence number for the staleness guard.
func (v *Validator) begin(name string) uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq[name]++
	v.states[name] = StateValidating
	return v.seq[name]
}

// settle records the pass outcome unless a newer pass superseded it,
// so a slow stale "valid" can never overwrite a fresher "invalid".
func (v *Validator) settle(name string, seq uint64, s State) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.seq[name] != seq {
		return false
	}
	v.states[name] = s
	return true
}
