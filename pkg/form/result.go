package form

// State tracks where a field is in its validation lifecycle, driving the
// host UI's per-field indicators.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateValid      State = "valid"
	StateInvalid    State = "invalid"
)

// FieldResult is the outcome of validating a single field.
// Valid holds exactly when Errors is empty; Warnings never affect validity.
type FieldResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
	State    State
}

// Result is the outcome of validating a whole form or one wizard step.
// Errors and Warnings contain only fields with at least one entry.
// TouchedFields lists every field actually checked, in declaration order,
// and FirstErrorField is the first of those carrying an error, or "" when
// the form is valid.
type Result struct {
	Valid           bool
	Errors          map[string][]string
	Warnings        map[string][]string
	TouchedFields   []string
	FirstErrorField string
}

// ErrorFields returns the touched fields that carry errors, preserving
// touched order. Hosts hand this straight to the focus coordinator.
func (r Result) ErrorFields() []string {
	var fields []string
	for _, f := range r.TouchedFields {
		if len(r.Errors[f]) > 0 {
			fields = append(fields, f)
		}
	}
	return fields
}
