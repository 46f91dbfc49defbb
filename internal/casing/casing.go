// Package casing converts free-form text to kebab-case, PascalCase and
// camelCase using the word-boundary rules of the widely used "change-case"
// string utilities, so conversions stay predictable for users who already
// rely on those tools.
package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Caser converts strings between case conventions. The zero value is not
// usable; construct one with New. A Caser holds no mutable state and is safe
// for concurrent use.
type Caser struct {
	tag language.Tag
}

// Option configures a Caser.
type Option func(*Caser)

// WithLocale sets the language used for upper/lower case mapping
// (e.g. language.Turkish maps "I" to "ı").
func WithLocale(tag language.Tag) Option {
	return func(c *Caser) {
		c.tag = tag
	}
}

// New returns a Caser. Without options it uses language-neutral case mapping.
func New(opts ...Option) *Caser {
	c := &Caser{tag: language.Und}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCaser = New()

// Default returns the shared language-neutral Caser.
func Default() *Caser { return defaultCaser }

// Kebab converts s using the default Caser.
func Kebab(s string) string { return defaultCaser.Kebab(s) }

// Pascal converts s using the default Caser.
func Pascal(s string) string { return defaultCaser.Pascal(s) }

// Camel converts s using the default Caser.
func Camel(s string) string { return defaultCaser.Camel(s) }

// Kebab lowercases every word and joins them with single hyphens.
//
//	"fooBar"         -> "foo-bar"
//	"XMLHttpRequest" -> "xml-http-request"
//	"my block"       -> "my-block"
func (c *Caser) Kebab(s string) string {
	words := Split(s)
	if len(words) == 0 {
		return ""
	}
	lower := cases.Lower(c.tag)
	for i, w := range words {
		words[i] = lower.String(w)
	}
	return strings.Join(words, "-")
}

// Pascal capitalizes every word and joins them without separators. A word
// after the first that starts with a digit is prefixed with "_" so that the
// digit stays visibly separated ("foo 2" -> "Foo_2").
func (c *Caser) Pascal(s string) string {
	words := Split(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for i, w := range words {
		b.WriteString(c.capitalize(w, i))
	}
	return b.String()
}

// Camel is Pascal with the first word lowercased entirely.
func (c *Caser) Camel(s string) string {
	words := Split(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(cases.Lower(c.tag).String(words[0]))
	for i, w := range words[1:] {
		b.WriteString(c.capitalize(w, i+1))
	}
	return b.String()
}

func (c *Caser) capitalize(word string, index int) string {
	r, size := utf8.DecodeRuneInString(word)
	var initial string
	if index > 0 && r >= '0' && r <= '9' {
		initial = "_" + word[:size]
	} else {
		initial = cases.Upper(c.tag).String(word[:size])
	}
	return initial + cases.Lower(c.tag).String(word[size:])
}

type runeCategory int

const (
	catOther runeCategory = iota
	catLower
	catUpper
	catDigit
	catLetter // letters that are neither upper nor lower case (Lt, Lm, Lo)
)

func categorize(r rune) runeCategory {
	switch {
	case unicode.IsLower(r):
		return catLower
	case unicode.IsUpper(r):
		return catUpper
	case r >= '0' && r <= '9':
		return catDigit
	case unicode.IsLetter(r):
		return catLetter
	default:
		return catOther
	}
}

// Split breaks s into words. Boundaries are:
//
//   - a lower case letter or digit followed by an upper case letter ("fooBar");
//   - an upper case letter followed by an upper+lower pair ("XMLHttp" -> "XML", "Http");
//   - any run of characters that are neither letters nor ASCII digits.
//
// Digits stay attached to their neighbours: "v2Beta" -> "v2", "Beta".
func Split(s string) []string {
	rs := []rune(s)
	if len(rs) == 0 {
		return nil
	}

	cats := make([]runeCategory, len(rs))
	for i, r := range rs {
		cats[i] = categorize(r)
	}

	// breakBefore[i] marks a word boundary between rs[i-1] and rs[i].
	breakBefore := make([]bool, len(rs))
	for i := 1; i < len(rs); i++ {
		if cats[i] == catUpper && (cats[i-1] == catLower || cats[i-1] == catDigit) {
			breakBefore[i] = true
		}
	}
	for i := 0; i+2 < len(rs); i++ {
		if cats[i] == catUpper && cats[i+1] == catUpper && cats[i+2] == catLower {
			breakBefore[i+1] = true
		}
	}

	var words []string
	start := -1
	for i := range rs {
		if cats[i] == catOther {
			if start >= 0 {
				words = append(words, string(rs[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if breakBefore[i] {
			words = append(words, string(rs[start:i]))
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(rs[start:]))
	}
	return words
}
