// Package formkit is the HTTP glue between the form validation engine and
// the product's route handlers. It binds url-encoded form submissions into
// the shape the orchestrator validates and renders validation results as
// the JSON envelope the frontend consumes.
//
// The engine itself lives under pkg/: constraint holds the declarative
// builders, form the orchestrator, debounce the trailing-call wrapper, and
// dom the focus/scroll coordinator. This package only adapts HTTP to those;
// it persists nothing and renders no markup.
//
// # Usage
//
//	v, _ := form.New(schema)
//	r := chi.NewRouter()
//	r.Mount("/trip-request", formkit.Routes(v, log))
//
// POST / validates the whole form; POST /steps/{step} validates one wizard
// step. Valid submissions answer 204 so the route handler behind the proxy
// can take over; invalid ones answer 422 with the error envelope.
package formkit
