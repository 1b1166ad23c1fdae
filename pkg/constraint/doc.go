// Package constraint provides the declarative building blocks of the form
// validation engine: small, immutable Constraint values produced by factory
// functions and evaluated against raw form input.
//
// The package groups builders by family: field_rules.go holds single-field
// constraints (required, email, phone, pattern, interests) and
// crossfield_rules.go holds constraints spanning several fields of the same
// form (date range, budget range, traveler count). Every builder returns a
// Constraint carrying a closed Kind tag, the involved field names, and the
// check closure; there is no hidden state, so constraints are safe to share
// across goroutines and forms.
//
// # Usage
//
//	c := constraint.Required("Full Name")
//	errs := c.Validate("")          // ["Full Name is required"]
//
//	dr := constraint.DateRange(time.Time{}, time.Time{})
//	byField := dr.FieldErrors(map[string]any{
//	    "startDate": "2024-06-02",
//	    "endDate":   "2024-06-01",
//	})                              // {"endDate": ["End date must be after start date"]}
//
// # Error Handling
//
// Validation failures are plain message strings returned from Validate or
// FieldErrors; nothing about user input is ever raised as a Go error.
// Builders panic only for programmer misuse, such as inverted bounds passed
// to Interests, wrapping ErrInvalidBounds so callers can test for it.
package constraint
