package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripfolio/formkit/pkg/dom"
)

type fakeElement struct {
	focused  bool
	scrolled []dom.ScrollOptions
}

func (e *fakeElement) Focus()                             { e.focused = true }
func (e *fakeElement) ScrollIntoView(o dom.ScrollOptions) { e.scrolled = append(e.scrolled, o) }

type fakeDocument struct {
	elements map[string]*fakeElement
}

func newFakeDocument(selectors ...string) *fakeDocument {
	d := &fakeDocument{elements: make(map[string]*fakeElement)}
	for _, s := range selectors {
		d.elements[s] = &fakeElement{}
	}
	return d
}

func (d *fakeDocument) Find(selector string) (dom.Element, bool) {
	el, ok := d.elements[selector]
	return el, ok
}

func TestCoordinator_FocusFirstError(t *testing.T) {
	t.Run("focuses and scrolls the first field with an element", func(t *testing.T) {
		doc := newFakeDocument(`[name="email"]`)
		c := dom.NewCoordinator(doc)

		errs := dom.NewErrorMap()
		errs.Add("email", "Invalid email")
		errs.Add("name", "Name required")

		assert.True(t, c.FocusFirstError(errs))

		el := doc.elements[`[name="email"]`]
		assert.True(t, el.focused)
		require.Len(t, el.scrolled, 1)
		assert.Equal(t, dom.ScrollOptions{Behavior: "smooth", Block: "center"}, el.scrolled[0])
	})

	t.Run("skips fields without elements", func(t *testing.T) {
		doc := newFakeDocument(`[name="name"]`)
		c := dom.NewCoordinator(doc)

		errs := dom.NewErrorMap()
		errs.Add("email", "Invalid email")
		errs.Add("name", "Name required")

		assert.True(t, c.FocusFirstError(errs))
		assert.True(t, doc.elements[`[name="name"]`].focused)
	})

	t.Run("returns false when no element matches", func(t *testing.T) {
		c := dom.NewCoordinator(newFakeDocument())

		errs := dom.NewErrorMap()
		errs.Add("email", "Invalid email")

		assert.False(t, c.FocusFirstError(errs))
	})

	t.Run("returns false for nil or empty error maps", func(t *testing.T) {
		c := dom.NewCoordinator(newFakeDocument(`[name="email"]`))
		assert.False(t, c.FocusFirstError(nil))
		assert.False(t, c.FocusFirstError(dom.NewErrorMap()))
	})
}

func TestCoordinator_FocusField(t *testing.T) {
	t.Run("focuses without scrolling", func(t *testing.T) {
		doc := newFakeDocument(`[name="phone"]`)
		c := dom.NewCoordinator(doc)

		assert.True(t, c.FocusField("phone"))
		el := doc.elements[`[name="phone"]`]
		assert.True(t, el.focused)
		assert.Empty(t, el.scrolled)
	})

	t.Run("returns false for missing elements", func(t *testing.T) {
		c := dom.NewCoordinator(newFakeDocument())
		assert.False(t, c.FocusField("phone"))
	})
}

func TestCoordinator_ScrollToFirstError(t *testing.T) {
	t.Run("scrolls by data-field lookup without focusing", func(t *testing.T) {
		doc := newFakeDocument(`[data-field="email"]`)
		c := dom.NewCoordinator(doc)

		errs := dom.NewErrorMap()
		errs.Add("email", "Invalid email")

		assert.True(t, c.ScrollToFirstError(errs))
		el := doc.elements[`[data-field="email"]`]
		assert.False(t, el.focused)
		require.Len(t, el.scrolled, 1)
		assert.Equal(t, "smooth", el.scrolled[0].Behavior)
		assert.Equal(t, "center", el.scrolled[0].Block)
	})

	t.Run("ignores name-attribute elements", func(t *testing.T) {
		doc := newFakeDocument(`[name="email"]`)
		c := dom.NewCoordinator(doc)

		errs := dom.NewErrorMap()
		errs.Add("email", "Invalid email")

		assert.False(t, c.ScrollToFirstError(errs))
	})
}

func TestNewCoordinator_NilDocument(t *testing.T) {
	c := dom.NewCoordinator(nil)
	errs := dom.NewErrorMap()
	errs.Add("email", "Invalid email")

	assert.False(t, c.FocusFirstError(errs))
	assert.False(t, c.FocusField("email"))
	assert.False(t, c.ScrollToFirstError(errs))
}

func TestErrorMap(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		m := dom.NewErrorMap()
		m.Add("name", "Name required")
		m.Add("email", "Invalid email")
		m.Add("name", "Name too short")

		assert.Equal(t, []string{"name", "email"}, m.Fields())
		assert.Equal(t, []string{"Name required", "Name too short"}, m.Messages("name"))
		assert.Equal(t, 2, m.Len())
	})

	t.Run("builds from an ordered result", func(t *testing.T) {
		m := dom.ErrorMapFrom(
			[]string{"name", "email", "age"},
			map[string][]string{
				"email": {"Invalid email"},
				"age":   {"Too young"},
			},
		)
		assert.Equal(t, []string{"email", "age"}, m.Fields())
	})

	t.Run("ignores empty message lists", func(t *testing.T) {
		m := dom.NewErrorMap()
		m.Add("email")
		assert.Zero(t, m.Len())
	})
}
