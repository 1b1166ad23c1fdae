package dom

// ErrorMap is an ordered field-to-messages mapping. Plain Go maps iterate
// in random order, which would break the "first erroring field" contract,
// so callers either build an ErrorMap incrementally with Add or derive one
// from a validation result with ErrorMapFrom.
type ErrorMap struct {
	fields   []string
	messages map[string][]string
}

// NewErrorMap returns an empty ordered error map.
func NewErrorMap() *ErrorMap {
	return &ErrorMap{messages: make(map[string][]string)}
}

// ErrorMapFrom builds an ErrorMap from an ordered field list and an
// unordered errors map, keeping only fields that carry messages.
func ErrorMapFrom(order []string, errors map[string][]string) *ErrorMap {
	m := NewErrorMap()
	for _, f := range order {
		if msgs := errors[f]; len(msgs) > 0 {
			m.Add(f, msgs...)
		}
	}
	return m
}

// Add appends messages for a field, registering the field's position on
// first use.
func (m *ErrorMap) Add(field string, msgs ...string) {
	if len(msgs) == 0 {
		return
	}
	if _, ok := m.messages[field]; !ok {
		m.fields = append(m.fields, field)
	}
	m.messages[field] = append(m.messages[field], msgs...)
}

// Fields returns the field names in insertion order.
func (m *ErrorMap) Fields() []string {
	out := make([]string, len(m.fields))
	copy(out, m.fields)
	return out
}

// Messages returns the messages recorded for a field.
func (m *ErrorMap) Messages(field string) []string {
	return m.messages[field]
}

// Len returns the number of fields carrying errors.
func (m *ErrorMap) Len() int {
	return len(m.fields)
}
