package form

import (
	"fmt"

	"github.com/tripfolio/formkit/pkg/constraint"
)

// Schema declares a form: its fields in order, the constraints attached to
// each, any cross-field constraints, and an optional step partition.
// Build one with NewSchema and the chaining methods, then hand it to New;
// misuse recorded during building surfaces there.
type Schema struct {
	order  []string
	fields map[string][]constraint.Constraint
	cross  []constraint.Constraint
	steps  *StepContext
	err    error
}

// NewSchema returns an empty schema ready for Field declarations.
func NewSchema() *Schema {
	return &Schema{fields: make(map[string][]constraint.Constraint)}
}

// Field declares a field with its constraints. Declaration order is the
// order ValidateForm touches fields and the order FirstErrorField prefers.
func (s *Schema) Field(name string, cs ...constraint.Constraint) *Schema {
	if s.err != nil {
		return s
	}
	if name == "" {
		s.err = ErrEmptyFieldName
		return s
	}
	if _, exists := s.fields[name]; exists {
		s.err = fmt.Errorf("%w: %s", ErrDuplicateField, name)
		return s
	}

	s.order = append(s.order, name)
	s.fields[name] = append([]constraint.Constraint(nil), cs...)
	return s
}

// CrossField attaches constraints that span several fields of the form.
func (s *Schema) CrossField(cs ...constraint.Constraint) *Schema {
	s.cross = append(s.cross, cs...)
	return s
}

// Steps attaches a wizard step partition. The partition is checked against
// the declared fields when the schema is handed to New.
func (s *Schema) Steps(sc StepContext) *Schema {
	s.steps = &sc
	return s
}

// Fields returns the declared field names in declaration order.
func (s *Schema) Fields() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Has reports whether a field is declared on the schema.
func (s *Schema) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// StepCount returns the number of steps in the partition, zero without one.
func (s *Schema) StepCount() int {
	if s.steps == nil {
		return 0
	}
	return len(s.steps.StepFields)
}

func (s *Schema) check() error {
	if s.err != nil {
		return s.err
	}
	if s.steps != nil {
		if err := s.steps.validate(s.Has); err != nil {
			return err
		}
	}
	return nil
}
