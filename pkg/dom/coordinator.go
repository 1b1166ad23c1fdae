package dom

import "fmt"

// Coordinator drives focus and scrolling toward erroring fields.
// It is the only part of the engine allowed to touch the rendering surface.
type Coordinator struct {
	doc Document
}

// NewCoordinator wraps a host document. A nil document degrades to
// NopDocument so headless callers never branch.
func NewCoordinator(doc Document) *Coordinator {
	if doc == nil {
		doc = NopDocument{}
	}
	return &Coordinator{doc: doc}
}

// FocusFirstError walks the error map in field order, focuses the first
// field whose element exists (looked up by name attribute), and smoothly
// scrolls it to center. Reports whether any element was focused.
func (c *Coordinator) FocusFirstError(errs *ErrorMap) bool {
	if errs == nil {
		return false
	}
	for _, field := range errs.Fields() {
		if el, ok := c.doc.Find(nameSelector(field)); ok {
			el.Focus()
			el.ScrollIntoView(SmoothCenter)
			return true
		}
	}
	return false
}

// FocusField focuses one specific field's element by name attribute,
// without scrolling. Reports whether the element existed.
func (c *Coordinator) FocusField(field string) bool {
	el, ok := c.doc.Find(nameSelector(field))
	if !ok {
		return false
	}
	el.Focus()
	return true
}

// ScrollToFirstError walks the error map in field order and scrolls the
// first existing element to center, looked up by data-field attribute and
// without stealing focus. Reports whether any element was scrolled.
func (c *Coordinator) ScrollToFirstError(errs *ErrorMap) bool {
	if errs == nil {
		return false
	}
	for _, field := range errs.Fields() {
		if el, ok := c.doc.Find(dataFieldSelector(field)); ok {
			el.ScrollIntoView(SmoothCenter)
			return true
		}
	}
	return false
}

func nameSelector(field string) string {
	return fmt.Sprintf("[name=%q]", field)
}

func dataFieldSelector(field string) string {
	return fmt.Sprintf("[data-field=%q]", field)
}
