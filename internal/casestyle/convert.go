package casestyle

import (
	"regexp"
	"strings"
	"unicode"
)

// ToCamelCase converts name to camelCase. The whole name is lowercased first,
// then `_` and `-` separated segments are merged by uppercasing the letter
// that follows each separator. Converting an already-camelCase name therefore
// collapses to all-lowercase; that lossy behavior is load-bearing for
// compatibility and must not be "fixed".
func ToCamelCase(name string) string {
	if name == "" {
		return name
	}

	lowered := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lowered))

	upperNext := false
	for _, r := range lowered {
		if r == '_' || r == '-' {
			upperNext = true
			continue
		}
		if upperNext {
			r = unicode.ToUpper(r)
			upperNext = false
		}
		b.WriteRune(r)
	}

	out := b.String()
	if out == "" {
		return out
	}
	runes := []rune(out)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ToPascalCase converts name to PascalCase by splitting on camelCase humps and
// on `_`, `-` and spaces, then capitalizing each segment.
func ToPascalCase(name string) string {
	if name == "" {
		return name
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, seg := range splitSegments(name) {
		runes := []rune(seg)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(strings.ToLower(string(runes[1:])))
	}
	return b.String()
}

var (
	snakeLowerUpper = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	snakeAcronym    = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	snakeSeparators = regexp.MustCompile(`[-\s]+`)
)

// ToSnakeCase converts name to snake_case. An underscore is inserted between
// a lowercase letter or digit and a following uppercase letter, and between a
// run of capitals and a following capitalized word (the acronym boundary, so
// MYURLParser becomes myurl_parser). Dashes and spaces become underscores.
func ToSnakeCase(name string) string {
	if name == "" {
		return name
	}

	out := snakeLowerUpper.ReplaceAllString(name, "${1}_${2}")
	out = snakeAcronym.ReplaceAllString(out, "${1}_${2}")
	out = snakeSeparators.ReplaceAllString(out, "_")
	return strings.ToLower(out)
}

// splitSegments breaks name into word segments at separators and before each
// uppercase letter.
func splitSegments(name string) []string {
	var segs []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			segs = append(segs, string(cur))
			cur = cur[:0]
		}
	}

	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return segs
}
