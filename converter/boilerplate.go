package converter

import (
	"regexp"
	"slices"
)

// Boilerplate describes titles and descriptions that the schema library
// attaches on its own. Matching values are never copied into fragments.
type Boilerplate struct {
	// Titles are matched exactly.
	Titles []string

	// TitlePatterns match generated titles such as "minLength(1)".
	TitlePatterns []*regexp.Regexp

	// DescriptionPatterns match generated descriptions such as "a string".
	DescriptionPatterns []*regexp.Regexp
}

var defaultBoilerplate = DefaultBoilerplate()

// DefaultBoilerplate returns the pattern set matching the titles and
// descriptions produced by the schema package. Each call returns a new value
// that may be extended freely.
func DefaultBoilerplate() *Boilerplate {
	return &Boilerplate{
		Titles: []string{
			"string",
			"number",
			"boolean",
			"undefined",
			"null",
			"nonEmptyString",
			"int",
			"greaterThan",
			"lessThan",
			"greaterThanOrEqualTo",
			"lessThanOrEqualTo",
			"minLength",
			"maxLength",
			"pattern",
			"multipleOf",
			"between",
			"nonNegative",
			"positive",
			"minItems",
			"maxItems",
			"itemsCount",
		},
		TitlePatterns: []*regexp.Regexp{
			regexp.MustCompile(`^(greaterThan|lessThan|greaterThanOrEqualTo|lessThanOrEqualTo|minLength|maxLength|minItems|maxItems|itemsCount|pattern|multipleOf|between)\(.*\)$`),
			regexp.MustCompile(`^(nonNegative|positive)\(\)$`),
		},
		DescriptionPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^a string$`),
			regexp.MustCompile(`^a number$`),
			regexp.MustCompile(`^a boolean$`),
			regexp.MustCompile(`^an integer$`),
			regexp.MustCompile(`character\(s\)$`),
			regexp.MustCompile(`^divisible by`),
			regexp.MustCompile(`^less than`),
			regexp.MustCompile(`^greater than`),
			regexp.MustCompile(`^between`),
			regexp.MustCompile(`^non-negative`),
			regexp.MustCompile(`^positive`),
			regexp.MustCompile(`^non empty`),
			regexp.MustCompile(`^matching the pattern`),
			regexp.MustCompile(`^a positive number$`),
			regexp.MustCompile(`^a number less than`),
			regexp.MustCompile(`^a number greater than`),
			regexp.MustCompile(`^an array of at least`),
			regexp.MustCompile(`^an array of at most`),
			regexp.MustCompile(`^an array of exactly`),
			regexp.MustCompile(`^a string at least .* character\(s\) long$`),
			regexp.MustCompile(`^a string at most .* character\(s\) long$`),
			regexp.MustCompile(`^a string matching the pattern`),
			regexp.MustCompile(`^a non empty string$`),
			regexp.MustCompile(`^a non-negative number$`),
			regexp.MustCompile(`^a number between`),
			regexp.MustCompile(`^a number divisible by`),
		},
	}
}

// IsTitle reports whether title was generated by the schema library.
func (b *Boilerplate) IsTitle(title string) bool {
	if slices.Contains(b.Titles, title) {
		return true
	}
	return matchAny(b.TitlePatterns, title)
}

// IsDescription reports whether description was generated by the schema library.
func (b *Boilerplate) IsDescription(description string) bool {
	return matchAny(b.DescriptionPatterns, description)
}

func matchAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
