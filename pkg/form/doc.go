// Package form implements the multi-step form validation orchestrator.
//
// A Schema declares the form's fields in order, attaches constraints from
// the constraint package, and optionally partitions fields into wizard
// steps. A Validator owns one schema plus a private registry of custom
// asynchronous validators and exposes three entry points: ValidateForm for
// whole-form checks, ValidateField for a single field as the user types,
// and ValidateStep for one wizard page.
//
// # Architecture
//
// Structural constraints always run first; a registered custom validator
// for a field runs regardless of structural failures and its messages are
// appended. During ValidateForm all custom validators run concurrently and
// the call settles only once every one of them has. Each field moves
// through the states idle, validating, and then valid or invalid; the
// validator keeps a per-field sequence number so the outcome of a
// superseded call can never overwrite the state written by a newer one.
// A returned FieldResult always reflects its own call; FieldState reflects
// the newest.
//
// Anything about user input is reported inside a Result or FieldResult.
// Go errors are reserved for configuration mistakes: registering a custom
// validator for an undeclared field, a step partition referencing unknown
// fields, or an out-of-range step index. Those surface synchronously at
// construction or registration and are never folded into results.
//
// # Usage
//
//	schema := form.NewSchema().
//	    Field("name", constraint.Required("Name")).
//	    Field("email", constraint.Required("Email"), constraint.Email())
//
//	v, err := form.New(schema)
//	if err != nil {
//	    // schema misconfiguration, fix the code
//	}
//
//	res := v.ValidateForm(ctx, data)
//	if !res.Valid {
//	    show(res.Errors, res.FirstErrorField)
//	}
//
// Schemas can also be loaded from declarative YAML documents with
// ParseSchema or LoadSchema, which the white-label hosts use to ship
// per-tenant form definitions as configuration.
package form
