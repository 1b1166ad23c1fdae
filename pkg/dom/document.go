package dom

// ScrollOptions mirrors the scrollIntoView options the coordinator uses.
type ScrollOptions struct {
	Behavior string
	Block    string
}

// SmoothCenter is the scroll profile used when guiding a user to an error.
var SmoothCenter = ScrollOptions{Behavior: "smooth", Block: "center"}

// Element is a focusable, scrollable node of the host's rendering surface.
type Element interface {
	Focus()
	ScrollIntoView(opts ScrollOptions)
}

// Document locates elements by CSS-style selector. Find reports whether a
// matching element exists; the coordinator never assumes presence.
type Document interface {
	Find(selector string) (Element, bool)
}

// NopDocument is a Document with no elements, for headless hosts.
type NopDocument struct{}

// Find always reports no match.
func (NopDocument) Find(string) (Element, bool) { return nil, false }
