package constraint

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode"
)

const (
	defaultEmailMessage = "Please enter a valid email address"
	defaultPhoneMessage = "Phone number must be at least 10 digits"
)

// Required validates that a value is present. Strings fail only when
// exactly empty; no trimming is applied, so whitespace counts as input.
func Required(label string) Constraint {
	return Constraint{
		kind: KindRequired,
		rule: "required",
		check: func(value any) []string {
			if value == nil {
				return []string{fmt.Sprintf("%s is required", label)}
			}
			if s, ok := asString(value); ok && s == "" {
				return []string{fmt.Sprintf("%s is required", label)}
			}
			return nil
		},
	}
}

// Email validates address syntax, accepting plus-tags and multi-label
// domains such as user.name+tag@domain.co.uk. An optional custom message
// replaces the default.
func Email(customMessage ...string) Constraint {
	msg := defaultEmailMessage
	if len(customMessage) > 0 && customMessage[0] != "" {
		msg = customMessage[0]
	}

	return Constraint{
		kind: KindPattern,
		rule: "email",
		check: func(value any) []string {
			s, ok := asString(value)
			if !ok || !validEmail(s) {
				return []string{msg}
			}
			return nil
		},
	}
}

func validEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	// mail.ParseAddress is laxer than web forms want: require a dotted
	// domain with no empty labels.
	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	local, domain := parts[0], parts[1]
	if local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// Phone validates that a value contains at least 10 digit characters.
// Spaces, parentheses, dashes, and a leading plus are ignored, so both
// "1234567890" and "+1 (555) 123-4567" pass.
func Phone(customMessage ...string) Constraint {
	msg := defaultPhoneMessage
	if len(customMessage) > 0 && customMessage[0] != "" {
		msg = customMessage[0]
	}

	return Constraint{
		kind: KindPattern,
		rule: "phone",
		check: func(value any) []string {
			s, ok := asString(value)
			if !ok {
				return []string{msg}
			}

			digits := 0
			for _, r := range s {
				if unicode.IsDigit(r) {
					digits++
				}
			}
			if digits < 10 {
				return []string{msg}
			}
			return nil
		},
	}
}

// Pattern validates a string against a regular expression.
// The pattern must compile; a bad pattern is programmer misuse and panics.
func Pattern(pattern, message string) Constraint {
	re := regexp.MustCompile(pattern)

	return Constraint{
		kind: KindPattern,
		rule: "pattern",
		check: func(value any) []string {
			s, ok := asString(value)
			if !ok || !re.MatchString(s) {
				return []string{message}
			}
			return nil
		},
	}
}

// Interests validates that a selection holds between minCount and maxCount
// items. Panics with ErrInvalidBounds when maxCount < minCount.
func Interests(minCount, maxCount int) Constraint {
	if maxCount < minCount {
		panic(fmt.Errorf("%w: interests max %d < min %d", ErrInvalidBounds, maxCount, minCount))
	}

	return Constraint{
		kind: KindPattern,
		rule: "interests",
		check: func(value any) []string {
			n, ok := sliceLen(value)
			if !ok {
				// A checkbox group with one selection binds as a lone string.
				if s, isStr := asString(value); isStr && s != "" {
					n = 1
				}
			}
			if n < minCount {
				return []string{fmt.Sprintf("Please select at least %d interest(s)", minCount)}
			}
			if n > maxCount {
				return []string{fmt.Sprintf("Please select no more than %d interests", maxCount)}
			}
			return nil
		},
	}
}

// Custom wraps a host-supplied synchronous check as a constraint so it can
// live in a schema next to the built-in rules.
func Custom(rule string, check func(value any) []string) Constraint {
	return Constraint{
		kind:  KindCustom,
		rule:  rule,
		check: check,
	}
}
