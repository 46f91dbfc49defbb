// Package bem rewrites free-form identifiers into BEM naming conventions
// (block__element--modifier).
//
// Text is split twice, each time keeping the delimiters: first on dots and
// whitespace runs, then each remaining fragment on the "__" and "--" BEM
// separators. Only the identifier pieces are case converted; dots,
// whitespace and separators come back exactly as they went in.
package bem

import (
	"fmt"
	"strings"

	"github.com/tarrence/bemcase/internal/casing"
)

// Mode selects the target naming convention.
type Mode int

const (
	// ModeKebab applies kebab-case to the block and to elements/modifiers:
	// my-block__my-element--my-modifier.
	ModeKebab Mode = iota
	// ModePascalCamel applies PascalCase to the block and camelCase to
	// elements/modifiers: MyBlock__myElement--myModifier.
	ModePascalCamel
)

func (m Mode) String() string {
	switch m {
	case ModeKebab:
		return "kebab"
	case ModePascalCamel:
		return "pascal-camel"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode resolves a mode name. Accepted names are "kebab" and
// "pascal-camel" plus a few aliases; matching ignores case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kebab", "kebab-bem":
		return ModeKebab, nil
	case "pascal-camel", "pascal-camel-bem", "pascal", "camel":
		return ModePascalCamel, nil
	default:
		return ModeKebab, fmt.Errorf("unknown mode %q (expected kebab or pascal-camel)", s)
	}
}

// CaseRules supplies the case conversions applied to identifier pieces.
// *casing.Caser satisfies it.
type CaseRules interface {
	Kebab(string) string
	Pascal(string) string
	Camel(string) string
}

// Transformer rewrites text into a BEM convention. It holds no mutable state.
type Transformer struct {
	rules CaseRules
}

// New returns a Transformer using rules, or casing.Default() when rules is nil.
func New(rules CaseRules) *Transformer {
	if rules == nil {
		rules = casing.Default()
	}
	return &Transformer{rules: rules}
}

var defaultTransformer = New(nil)

// Transform rewrites text with the default case rules.
func Transform(text string, mode Mode) string {
	return defaultTransformer.Transform(text, mode)
}

// Transform trims text and rewrites every identifier piece for mode. It never
// fails: empty pieces convert to "" and every delimiter is kept verbatim.
//
// Multi-line text is treated as one string; callers that want per-line
// trimming split lines first.
func (t *Transformer) Transform(text string, mode Mode) string {
	block, member := t.rulesFor(mode)

	segments := splitKeep(topLevelDelimiter, trimSpace(text))
	for i, seg := range segments {
		if i%2 == 1 {
			continue
		}
		pieces := splitKeep(bemSeparator, seg)
		for j, piece := range pieces {
			switch {
			case j == 0:
				pieces[j] = block(piece)
			case j%2 == 0:
				pieces[j] = member(piece)
			}
		}
		segments[i] = strings.Join(pieces, "")
	}
	return strings.Join(segments, "")
}

// rulesFor returns the block rule and the element/modifier rule for mode.
func (t *Transformer) rulesFor(mode Mode) (block, member func(string) string) {
	if mode == ModePascalCamel {
		return t.rules.Pascal, t.rules.Camel
	}
	return t.rules.Kebab, t.rules.Kebab
}
