package constraint

import (
	"fmt"
	"strconv"
	"time"
)

// Field keys the travel-planning forms use for the cross-field groups.
const (
	FieldStartDate = "startDate"
	FieldEndDate   = "endDate"
	FieldBudgetMin = "budgetMin"
	FieldBudgetMax = "budgetMax"
	FieldAdults    = "adults"
	FieldChildren  = "children"
	FieldInfants   = "infants"
)

// DateRange validates that endDate falls after startDate. When lower or
// upper is non-zero, each date must additionally lie inside
// [lower, upper]; zero bounds leave that side unconstrained.
func DateRange(lower, upper time.Time) Constraint {
	return Constraint{
		kind:   KindCrossField,
		rule:   "dateRange",
		fields: []string{FieldStartDate, FieldEndDate},
		checkCross: func(data map[string]any) map[string][]string {
			out := map[string][]string{}

			start, haveStart := asTime(data[FieldStartDate])
			end, haveEnd := asTime(data[FieldEndDate])

			if haveStart && haveEnd && !end.After(start) {
				out[FieldEndDate] = append(out[FieldEndDate], "End date must be after start date")
			}

			if haveStart {
				if msg := outsideBounds(start, lower, upper); msg != "" {
					out[FieldStartDate] = append(out[FieldStartDate], msg)
				}
			}
			if haveEnd {
				if msg := outsideBounds(end, lower, upper); msg != "" {
					out[FieldEndDate] = append(out[FieldEndDate], msg)
				}
			}

			if len(out) == 0 {
				return nil
			}
			return out
		},
	}
}

func outsideBounds(d, lower, upper time.Time) string {
	if !lower.IsZero() && d.Before(lower) {
		return fmt.Sprintf("Date must be on or after %s", lower.Format("2006-01-02"))
	}
	if !upper.IsZero() && d.After(upper) {
		return fmt.Sprintf("Date must be on or before %s", upper.Format("2006-01-02"))
	}
	return ""
}

// BudgetRange validates that budgetMax is at least budgetMin and that both
// values lie inside [minAllowed, maxAllowed].
func BudgetRange(minAllowed, maxAllowed float64) Constraint {
	if maxAllowed < minAllowed {
		panic(fmt.Errorf("%w: budget max %v < min %v", ErrInvalidBounds, maxAllowed, minAllowed))
	}

	return Constraint{
		kind:   KindCrossField,
		rule:   "budgetRange",
		fields: []string{FieldBudgetMin, FieldBudgetMax},
		checkCross: func(data map[string]any) map[string][]string {
			out := map[string][]string{}

			lo, haveLo := asFloat(data[FieldBudgetMin])
			hi, haveHi := asFloat(data[FieldBudgetMax])

			if haveLo && haveHi && hi < lo {
				out[FieldBudgetMax] = append(out[FieldBudgetMax],
					"Maximum budget must be greater than or equal to minimum budget")
			}

			if haveLo {
				if msg := budgetOutOfRange(lo, minAllowed, maxAllowed); msg != "" {
					out[FieldBudgetMin] = append(out[FieldBudgetMin], msg)
				}
			}
			if haveHi {
				if msg := budgetOutOfRange(hi, minAllowed, maxAllowed); msg != "" {
					out[FieldBudgetMax] = append(out[FieldBudgetMax], msg)
				}
			}

			if len(out) == 0 {
				return nil
			}
			return out
		},
	}
}

func budgetOutOfRange(v, minAllowed, maxAllowed float64) string {
	if v < minAllowed || v > maxAllowed {
		return fmt.Sprintf("Budget must be between %s and %s",
			strconv.FormatFloat(minAllowed, 'f', -1, 64),
			strconv.FormatFloat(maxAllowed, 'f', -1, 64))
	}
	return ""
}

// TravelerCount validates that adults, children, and infants together do
// not exceed maxTotal. The failure is attributed to the adults field, the
// first of the group in form order.
func TravelerCount(maxTotal int) Constraint {
	return Constraint{
		kind:   KindCrossField,
		rule:   "travelerCount",
		fields: []string{FieldAdults, FieldChildren, FieldInfants},
		checkCross: func(data map[string]any) map[string][]string {
			total := 0
			for _, f := range []string{FieldAdults, FieldChildren, FieldInfants} {
				if n, ok := asInt(data[f]); ok {
					total += n
				}
			}

			if total > maxTotal {
				return map[string][]string{
					FieldAdults: {fmt.Sprintf("Total travelers cannot exceed %d", maxTotal)},
				}
			}
			return nil
		},
	}
}
