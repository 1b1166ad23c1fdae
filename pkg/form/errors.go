package form

import "errors"

var (
	// ErrNilSchema is returned by New when no schema is supplied.
	ErrNilSchema = errors.New("form: schema is nil")

	// ErrDuplicateField indicates a field name was declared twice on a schema.
	ErrDuplicateField = errors.New("form: duplicate field")

	// ErrEmptyFieldName indicates a field was declared with an empty name.
	ErrEmptyFieldName = errors.New("form: empty field name")

	// ErrUnknownField indicates an operation referenced a field the schema
	// does not declare.
	ErrUnknownField = errors.New("form: unknown field")

	// ErrInvalidStepPartition indicates the step partition references
	// undeclared fields or lists required/optional fields outside their step.
	ErrInvalidStepPartition = errors.New("form: invalid step partition")

	// ErrNoSteps is returned by ValidateStep when the schema has no step partition.
	ErrNoSteps = errors.New("form: schema has no step partition")

	// ErrInvalidStep is returned by ValidateStep for an out-of-range step index.
	ErrInvalidStep = errors.New("form: step index out of range")

	// ErrNilValidatorFunc indicates AddCustomValidator was given a nil function.
	ErrNilValidatorFunc = errors.New("form: nil custom validator")

	// ErrInvalidSchemaDocument indicates a declarative schema document could
	// not be turned into a schema.
	ErrInvalidSchemaDocument = errors.New("form: invalid schema document")
)
