package constraint_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripfolio/formkit/pkg/constraint"
)

func TestDateRange(t *testing.T) {
	c := constraint.DateRange(time.Time{}, time.Time{})

	t.Run("rejects end on or before start", func(t *testing.T) {
		byField := c.FieldErrors(map[string]any{
			"startDate": "2024-06-02",
			"endDate":   "2024-06-01",
		})
		assert.Equal(t, []string{"End date must be after start date"}, byField["endDate"])

		byField = c.FieldErrors(map[string]any{
			"startDate": "2024-06-01",
			"endDate":   "2024-06-01",
		})
		assert.Equal(t, []string{"End date must be after start date"}, byField["endDate"])
	})

	t.Run("accepts end after start", func(t *testing.T) {
		assert.Nil(t, c.FieldErrors(map[string]any{
			"startDate": "2024-06-01",
			"endDate":   "2024-06-02",
		}))
	})

	t.Run("accepts time.Time values", func(t *testing.T) {
		assert.Nil(t, c.FieldErrors(map[string]any{
			"startDate": time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			"endDate":   time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		}))
	})

	t.Run("skips missing or unparseable dates", func(t *testing.T) {
		assert.Nil(t, c.FieldErrors(map[string]any{"startDate": "2024-06-01"}))
		assert.Nil(t, c.FieldErrors(map[string]any{"startDate": "soon", "endDate": "later"}))
	})

	t.Run("enforces bounds when supplied", func(t *testing.T) {
		bounded := constraint.DateRange(
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		)

		byField := bounded.FieldErrors(map[string]any{
			"startDate": "2024-05-01",
			"endDate":   "2024-07-15",
		})
		require.Len(t, byField["startDate"], 1)
		assert.Contains(t, byField["startDate"][0], "on or after 2024-06-01")
		require.Len(t, byField["endDate"], 1)
		assert.Contains(t, byField["endDate"][0], "on or before 2024-06-30")
	})

	t.Run("zero bounds leave dates unconstrained", func(t *testing.T) {
		assert.Nil(t, c.FieldErrors(map[string]any{
			"startDate": "1999-01-01",
			"endDate":   "2099-01-01",
		}))
	})

	t.Run("flattens messages through Validate", func(t *testing.T) {
		msgs := c.Validate(map[string]any{
			"startDate": "2024-06-02",
			"endDate":   "2024-06-01",
		})
		assert.Equal(t, []string{"End date must be after start date"}, msgs)
	})
}

func TestBudgetRange(t *testing.T) {
	c := constraint.BudgetRange(0, 100000)

	t.Run("rejects max below min with exact message", func(t *testing.T) {
		byField := c.FieldErrors(map[string]any{"budgetMin": 5000, "budgetMax": 1000})
		assert.Equal(t,
			[]string{"Maximum budget must be greater than or equal to minimum budget"},
			byField["budgetMax"])
	})

	t.Run("accepts ordered budgets", func(t *testing.T) {
		assert.Nil(t, c.FieldErrors(map[string]any{"budgetMin": 1000, "budgetMax": 5000}))
	})

	t.Run("accepts equal budgets", func(t *testing.T) {
		assert.Nil(t, c.FieldErrors(map[string]any{"budgetMin": 2000, "budgetMax": 2000}))
	})

	t.Run("rejects values outside the allowed range", func(t *testing.T) {
		byField := c.FieldErrors(map[string]any{"budgetMin": -50, "budgetMax": 250000})
		assert.Equal(t, []string{"Budget must be between 0 and 100000"}, byField["budgetMin"])
		assert.Equal(t, []string{"Budget must be between 0 and 100000"}, byField["budgetMax"])
	})

	t.Run("coerces string amounts", func(t *testing.T) {
		byField := c.FieldErrors(map[string]any{"budgetMin": "5000", "budgetMax": "1000"})
		require.Len(t, byField["budgetMax"], 1)
	})

	t.Run("panics on inverted allowed range", func(t *testing.T) {
		assert.Panics(t, func() { constraint.BudgetRange(100, 0) })
	})
}

func TestTravelerCount(t *testing.T) {
	c := constraint.TravelerCount(10)

	t.Run("rejects totals above the cap", func(t *testing.T) {
		byField := c.FieldErrors(map[string]any{"adults": 8, "children": 8, "infants": 8})
		require.Len(t, byField["adults"], 1)
		assert.Contains(t, byField["adults"][0], "cannot exceed 10")
	})

	t.Run("accepts totals at or below the cap", func(t *testing.T) {
		assert.Nil(t, c.FieldErrors(map[string]any{"adults": 2, "children": 1, "infants": 0}))
		assert.Nil(t, c.FieldErrors(map[string]any{"adults": 5, "children": 5, "infants": 0}))
	})

	t.Run("treats missing counts as zero", func(t *testing.T) {
		assert.Nil(t, c.FieldErrors(map[string]any{"adults": 2}))
	})

	t.Run("coerces string counts", func(t *testing.T) {
		byField := c.FieldErrors(map[string]any{"adults": "8", "children": "8", "infants": "0"})
		require.Len(t, byField["adults"], 1)
	})
}
