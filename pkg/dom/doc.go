// Package dom orchestrates focus and scroll-to-error behavior behind a
// minimal injectable document capability, keeping the rest of the engine
// free of any rendering surface.
//
// Hosts implement Document and Element for their environment: a wasm
// frontend wraps the real browser document, native shells wrap their own
// widget tree, and server-rendered previews or tests use a fake.
// NopDocument ships for headless hosts that want the coordinator wired but
// inert.
//
// FocusFirstError and ScrollToFirstError walk an ErrorMap in field order
// and act on the first field whose element exists. Go maps do not preserve
// insertion order, so the ErrorMap type carries ordering explicitly.
package dom
