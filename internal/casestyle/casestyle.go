// Package casestyle classifies identifier names against naming conventions
// and converts names between camelCase, PascalCase and snake_case.
package casestyle

import "fmt"

// Style represents an identifier naming convention.
type Style string

const (
	// Camel is lowerCamelCase.
	Camel Style = "camel"
	// Pascal is UpperCamelCase.
	Pascal Style = "pascal"
	// Snake is lower_snake_case.
	Snake Style = "snake"
)

// ParseStyle returns the Style for a user-supplied label.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "camel", "camelCase":
		return Camel, nil
	case "pascal", "PascalCase":
		return Pascal, nil
	case "snake", "snake_case":
		return Snake, nil
	default:
		return "", fmt.Errorf("unknown case style: %q (want camel, pascal, or snake)", s)
	}
}

// Label returns the conventional display name of the style.
func (s Style) Label() string {
	switch s {
	case Camel:
		return "camelCase"
	case Pascal:
		return "PascalCase"
	case Snake:
		return "snake_case"
	default:
		return string(s)
	}
}

// ops pairs a style's validity predicate with its canonical transform.
type ops struct {
	is func(string) bool
	to func(string) string
}

var styleOps = map[Style]ops{
	Camel:  {IsCamelCase, ToCamelCase},
	Pascal: {IsPascalCase, ToPascalCase},
	Snake:  {IsSnakeCase, ToSnakeCase},
}

// Matches reports whether name already satisfies the style.
func (s Style) Matches(name string) bool {
	o, ok := styleOps[s]
	if !ok {
		return false
	}
	return o.is(name)
}

// Convert returns the canonical rendering of name in the style.
func (s Style) Convert(name string) string {
	o, ok := styleOps[s]
	if !ok {
		return name
	}
	return o.to(name)
}

// IsCamelCase reports whether name is camelCase. A name qualifies only if it
// starts with a lowercase letter, is alphanumeric throughout, and contains at
// least one uppercase letter after the first character. A single all-lowercase
// word is deliberately not camelCase under this rule.
func IsCamelCase(name string) bool {
	if name == "" {
		return false
	}
	first := name[0]
	if first < 'a' || first > 'z' {
		return false
	}
	hasUpper := false
	for i := 1; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return hasUpper
}

// IsPascalCase reports whether name is PascalCase: leading uppercase letter,
// alphanumeric throughout, and at least one lowercase letter. All-caps
// acronyms such as MYNAME do not qualify.
func IsPascalCase(name string) bool {
	if name == "" {
		return false
	}
	first := name[0]
	if first < 'A' || first > 'Z' {
		return false
	}
	hasLower := false
	for i := 1; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return hasLower
}

// IsSnakeCase reports whether name is snake_case: lowercase letters, digits
// and underscores only, with at least one underscore. A single word without a
// separator does not qualify.
func IsSnakeCase(name string) bool {
	if name == "" {
		return false
	}
	hasUnderscore := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_':
			hasUnderscore = true
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return hasUnderscore
}
