package form

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tripfolio/formkit/pkg/constraint"
)

// Declarative schema documents let white-label tenants ship their trip
// forms as configuration:
//
//	fields:
//	  - name: email
//	    label: Email
//	    rules: [required, email]
//	  - name: interests
//	    label: Interests
//	    rules:
//	      - rule: interests
//	        min: 1
//	        max: 5
//	cross:
//	  - rule: dateRange
//	  - rule: budgetRange
//	    min: 0
//	    max: 100000
//	steps:
//	  - fields: [email]
//	    required: [email]
//	  - fields: [interests]

type schemaDoc struct {
	Fields []fieldSpec `yaml:"fields"`
	Cross  []ruleSpec  `yaml:"cross"`
	Steps  []stepSpec  `yaml:"steps"`
}

type fieldSpec struct {
	Name  string     `yaml:"name"`
	Label string     `yaml:"label"`
	Rules []ruleSpec `yaml:"rules"`
}

type stepSpec struct {
	Fields   []string `yaml:"fields"`
	Required []string `yaml:"required"`
	Optional []string `yaml:"optional"`
}

// ruleSpec accepts either a bare rule name ("required") or a mapping with
// parameters ({rule: interests, min: 1, max: 5}).
type ruleSpec struct {
	Rule    string   `yaml:"rule"`
	Message string   `yaml:"message"`
	Pattern string   `yaml:"pattern"`
	Min     *float64 `yaml:"min"`
	Max     *float64 `yaml:"max"`
	MinDate string   `yaml:"minDate"`
	MaxDate string   `yaml:"maxDate"`
}

func (r *ruleSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&r.Rule)
	}

	type plain ruleSpec
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = ruleSpec(p)
	return nil
}

// LoadSchema reads a declarative schema document from disk.
func LoadSchema(path string) (*Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchemaDocument, err)
	}
	return ParseSchema(raw)
}

// ParseSchema builds a Schema from a declarative YAML document. Unknown
// rules, missing parameters, duplicate fields, and step partitions
// referencing undeclared fields all fail here, at load time.
func ParseSchema(raw []byte) (*Schema, error) {
	var doc schemaDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchemaDocument, err)
	}
	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("%w: no fields declared", ErrInvalidSchemaDocument)
	}

	schema := NewSchema()
	for _, f := range doc.Fields {
		cs := make([]constraint.Constraint, 0, len(f.Rules))
		for _, r := range f.Rules {
			c, err := buildFieldRule(f, r)
			if err != nil {
				return nil, err
			}
			cs = append(cs, c)
		}
		schema.Field(f.Name, cs...)
	}

	for _, r := range doc.Cross {
		c, err := buildCrossRule(r)
		if err != nil {
			return nil, err
		}
		schema.CrossField(c)
	}

	if len(doc.Steps) > 0 {
		sc := StepContext{
			TotalSteps:     len(doc.Steps),
			StepFields:     make(map[int][]string, len(doc.Steps)),
			RequiredFields: make(map[int][]string),
			OptionalFields: make(map[int][]string),
		}
		for i, s := range doc.Steps {
			sc.StepFields[i] = s.Fields
			if len(s.Required) > 0 {
				sc.RequiredFields[i] = s.Required
			}
			if len(s.Optional) > 0 {
				sc.OptionalFields[i] = s.Optional
			}
		}
		schema.Steps(sc)
	}

	if err := schema.check(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchemaDocument, err)
	}

	return schema, nil
}

func buildFieldRule(f fieldSpec, r ruleSpec) (constraint.Constraint, error) {
	label := f.Label
	if label == "" {
		label = f.Name
	}

	switch r.Rule {
	case "required":
		return constraint.Required(label), nil
	case "email":
		if r.Message != "" {
			return constraint.Email(r.Message), nil
		}
		return constraint.Email(), nil
	case "phone":
		if r.Message != "" {
			return constraint.Phone(r.Message), nil
		}
		return constraint.Phone(), nil
	case "pattern":
		if r.Pattern == "" || r.Message == "" {
			return constraint.Constraint{}, fmt.Errorf(
				"%w: field %q pattern rule needs pattern and message", ErrInvalidSchemaDocument, f.Name)
		}
		return constraint.Pattern(r.Pattern, r.Message), nil
	case "interests":
		if r.Min == nil || r.Max == nil {
			return constraint.Constraint{}, fmt.Errorf(
				"%w: field %q interests rule needs min and max", ErrInvalidSchemaDocument, f.Name)
		}
		lo, hi := int(*r.Min), int(*r.Max)
		if hi < lo {
			return constraint.Constraint{}, fmt.Errorf(
				"%w: field %q interests bounds inverted", ErrInvalidSchemaDocument, f.Name)
		}
		return constraint.Interests(lo, hi), nil
	default:
		return constraint.Constraint{}, fmt.Errorf(
			"%w: field %q has unknown rule %q", ErrInvalidSchemaDocument, f.Name, r.Rule)
	}
}

func buildCrossRule(r ruleSpec) (constraint.Constraint, error) {
	switch r.Rule {
	case "dateRange":
		var lower, upper time.Time
		var err error
		if r.MinDate != "" {
			if lower, err = time.Parse("2006-01-02", r.MinDate); err != nil {
				return constraint.Constraint{}, fmt.Errorf("%w: bad minDate %q", ErrInvalidSchemaDocument, r.MinDate)
			}
		}
		if r.MaxDate != "" {
			if upper, err = time.Parse("2006-01-02", r.MaxDate); err != nil {
				return constraint.Constraint{}, fmt.Errorf("%w: bad maxDate %q", ErrInvalidSchemaDocument, r.MaxDate)
			}
		}
		return constraint.DateRange(lower, upper), nil
	case "budgetRange":
		if r.Min == nil || r.Max == nil {
			return constraint.Constraint{}, fmt.Errorf("%w: budgetRange needs min and max", ErrInvalidSchemaDocument)
		}
		if *r.Max < *r.Min {
			return constraint.Constraint{}, fmt.Errorf("%w: budgetRange bounds inverted", ErrInvalidSchemaDocument)
		}
		return constraint.BudgetRange(*r.Min, *r.Max), nil
	case "travelerCount":
		if r.Max == nil {
			return constraint.Constraint{}, fmt.Errorf("%w: travelerCount needs max", ErrInvalidSchemaDocument)
		}
		return constraint.TravelerCount(int(*r.Max)), nil
	default:
		return constraint.Constraint{}, fmt.Errorf("%w: unknown cross-field rule %q", ErrInvalidSchemaDocument, r.Rule)
	}
}
