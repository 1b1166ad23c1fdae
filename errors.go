package formkit

import "errors"

var (
	// ErrUnsupportedMediaType indicates a submission with a content type the
	// binder does not handle.
	ErrUnsupportedMediaType = errors.New("formkit: unsupported media type")

	// ErrMalformedForm indicates the request body could not be parsed as form data.
	ErrMalformedForm = errors.New("formkit: malformed form body")
)
