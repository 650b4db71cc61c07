package schema

import (
	"fmt"
	"strconv"

	"github.com/vitalvas/openschema/ast"
)

// Check is a named refinement with generated documentation and the JSON
// Schema keywords it implies.
type Check struct {
	name        string
	title       string
	description string
	jsonSchema  map[string]any
}

// Refine returns a custom check. Empty title or description leave the
// annotation unset.
func Refine(name, title, description string, jsonSchema map[string]any) Check {
	return Check{name: name, title: title, description: description, jsonSchema: jsonSchema}
}

// Name returns the predicate name.
func (c Check) Name() string {
	return c.name
}

func (c Check) apply(s Schema) Schema {
	annotations := docs(c.title, c.description)
	if c.jsonSchema != nil {
		annotations = annotations.With(ast.JSONSchemaAnnotationID, c.jsonSchema)
	}
	return Make(ast.NewRefinement(s.node, c.name, annotations))
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// MinLength requires at least n characters.
func MinLength(n int) Check {
	return Check{
		name:        "minLength",
		title:       fmt.Sprintf("minLength(%d)", n),
		description: fmt.Sprintf("a string at least %d character(s) long", n),
		jsonSchema:  map[string]any{"minLength": n},
	}
}

// MaxLength allows at most n characters.
func MaxLength(n int) Check {
	return Check{
		name:        "maxLength",
		title:       fmt.Sprintf("maxLength(%d)", n),
		description: fmt.Sprintf("a string at most %d character(s) long", n),
		jsonSchema:  map[string]any{"maxLength": n},
	}
}

// NonEmptyString requires at least one character.
func NonEmptyString() Check {
	return Check{
		name:        "nonEmptyString",
		title:       "nonEmptyString",
		description: "a non empty string",
		jsonSchema:  map[string]any{"minLength": 1},
	}
}

// Pattern requires a match of the regular expression expr.
func Pattern(expr string) Check {
	return Check{
		name:        "pattern",
		title:       fmt.Sprintf("pattern(/%s/)", expr),
		description: "a string matching the pattern " + expr,
		jsonSchema:  map[string]any{"pattern": expr},
	}
}

// Int requires an integral number. The number keeps its JSON type.
func Int() Check {
	return Check{
		name:        "int",
		title:       "int",
		description: "an integer",
		jsonSchema:  map[string]any{"multipleOf": 1},
	}
}

// Positive requires a number above zero.
func Positive() Check {
	return Check{
		name:        "positive",
		title:       "positive()",
		description: "a positive number",
		jsonSchema:  map[string]any{"exclusiveMinimum": 0},
	}
}

// NonNegative requires a number of zero or more.
func NonNegative() Check {
	return Check{
		name:        "nonNegative",
		title:       "nonNegative()",
		description: "a non-negative number",
		jsonSchema:  map[string]any{"minimum": 0},
	}
}

// GreaterThan requires a number above n.
func GreaterThan(n float64) Check {
	return Check{
		name:        "greaterThan",
		title:       fmt.Sprintf("greaterThan(%s)", formatNumber(n)),
		description: "a number greater than " + formatNumber(n),
		jsonSchema:  map[string]any{"exclusiveMinimum": n},
	}
}

// GreaterThanOrEqualTo requires a number of n or more.
func GreaterThanOrEqualTo(n float64) Check {
	return Check{
		name:        "greaterThanOrEqualTo",
		title:       fmt.Sprintf("greaterThanOrEqualTo(%s)", formatNumber(n)),
		description: "a number greater than or equal to " + formatNumber(n),
		jsonSchema:  map[string]any{"minimum": n},
	}
}

// LessThan requires a number below n.
func LessThan(n float64) Check {
	return Check{
		name:        "lessThan",
		title:       fmt.Sprintf("lessThan(%s)", formatNumber(n)),
		description: "a number less than " + formatNumber(n),
		jsonSchema:  map[string]any{"exclusiveMaximum": n},
	}
}

// LessThanOrEqualTo requires a number of n or less.
func LessThanOrEqualTo(n float64) Check {
	return Check{
		name:        "lessThanOrEqualTo",
		title:       fmt.Sprintf("lessThanOrEqualTo(%s)", formatNumber(n)),
		description: "a number less than or equal to " + formatNumber(n),
		jsonSchema:  map[string]any{"maximum": n},
	}
}

// Between requires a number in [lo, hi].
func Between(lo, hi float64) Check {
	return Check{
		name:        "between",
		title:       fmt.Sprintf("between(%s, %s)", formatNumber(lo), formatNumber(hi)),
		description: fmt.Sprintf("a number between %s and %s", formatNumber(lo), formatNumber(hi)),
		jsonSchema:  map[string]any{"minimum": lo, "maximum": hi},
	}
}

// MultipleOf requires a multiple of n.
func MultipleOf(n float64) Check {
	return Check{
		name:        "multipleOf",
		title:       fmt.Sprintf("multipleOf(%s)", formatNumber(n)),
		description: "a number divisible by " + formatNumber(n),
		jsonSchema:  map[string]any{"multipleOf": n},
	}
}

// MinItems requires at least n items.
func MinItems(n int) Check {
	return Check{
		name:        "minItems",
		title:       fmt.Sprintf("minItems(%d)", n),
		description: fmt.Sprintf("an array of at least %d item(s)", n),
		jsonSchema:  map[string]any{"minItems": n},
	}
}

// MaxItems allows at most n items.
func MaxItems(n int) Check {
	return Check{
		name:        "maxItems",
		title:       fmt.Sprintf("maxItems(%d)", n),
		description: fmt.Sprintf("an array of at most %d item(s)", n),
		jsonSchema:  map[string]any{"maxItems": n},
	}
}

// ItemsCount requires exactly n items.
func ItemsCount(n int) Check {
	return Check{
		name:        "itemsCount",
		title:       fmt.Sprintf("itemsCount(%d)", n),
		description: fmt.Sprintf("an array of exactly %d item(s)", n),
		jsonSchema:  map[string]any{"minItems": n, "maxItems": n},
	}
}
