package constraint

// Kind is the closed set of constraint variants the engine dispatches over.
type Kind string

const (
	// KindRequired marks presence checks.
	KindRequired Kind = "required"
	// KindPattern marks syntactic checks on a single value (email, phone, regexp).
	KindPattern Kind = "pattern"
	// KindCrossField marks checks spanning several fields of one form.
	KindCrossField Kind = "cross_field"
	// KindCustom marks host-supplied synchronous checks wrapped as constraints.
	KindCustom Kind = "custom"
)

// Constraint is a single immutable validation rule. Field constraints check
// one value via Validate; cross-field constraints check a data map via
// FieldErrors and attribute failures to specific fields.
type Constraint struct {
	kind       Kind
	rule       string
	fields     []string
	check      func(value any) []string
	checkCross func(data map[string]any) map[string][]string
}

// Kind returns the constraint's variant tag.
func (c Constraint) Kind() Kind {
	return c.kind
}

// Rule returns the builder name the constraint was created by, e.g. "email".
func (c Constraint) Rule() string {
	return c.rule
}

// Fields returns the field names a cross-field constraint reads,
// in the order the failure attribution prefers them. Nil for field constraints.
func (c Constraint) Fields() []string {
	if len(c.fields) == 0 {
		return nil
	}
	out := make([]string, len(c.fields))
	copy(out, c.fields)
	return out
}

// Validate checks a single value and returns failure messages, empty when
// the value passes. For a cross-field constraint the value must be the
// form's data map; messages are flattened in Fields order.
func (c Constraint) Validate(value any) []string {
	if c.checkCross != nil {
		data, ok := value.(map[string]any)
		if !ok {
			return nil
		}

		var msgs []string
		byField := c.checkCross(data)
		for _, f := range c.fields {
			msgs = append(msgs, byField[f]...)
		}
		return msgs
	}

	if c.check == nil {
		return nil
	}
	return c.check(value)
}

// FieldErrors evaluates a cross-field constraint against the form data and
// returns failure messages keyed by the field they belong to. Field
// constraints return nil.
func (c Constraint) FieldErrors(data map[string]any) map[string][]string {
	if c.checkCross == nil {
		return nil
	}
	return c.checkCross(data)
}
