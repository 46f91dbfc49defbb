package editor

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// selectionSpec is a comma separated list of ranges, each "line:char" or
// "line:char-line:char".
type selectionSpec struct {
	Ranges []*rangeSpec `@@ ( "," @@ )*`
}

type rangeSpec struct {
	Start *positionSpec `@@`
	End   *positionSpec `( "-" @@ )?`
}

type positionSpec struct {
	Line      int `@Int`
	Character int `":" @Int`
}

var selectionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[-:,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var selectionParser = participle.MustBuild[selectionSpec](
	participle.Lexer(selectionLexer),
	participle.Elide("Whitespace"),
)

// ParseSelections parses a selection spec such as "0:4-0:20, 3:0-5:12, 7:2".
// Lines and characters are zero-based; a lone position is a cursor. An empty
// spec yields no selections.
func ParseSelections(spec string) ([]Selection, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	parsed, err := selectionParser.ParseString("", spec)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSelection, spec, err)
	}
	out := make([]Selection, 0, len(parsed.Ranges))
	for _, r := range parsed.Ranges {
		start := Position{Line: r.Start.Line, Character: r.Start.Character}
		if r.End == nil {
			out = append(out, Cursor(start))
			continue
		}
		end := Position{Line: r.End.Line, Character: r.End.Character}
		out = append(out, NewSelection(start, end))
	}
	return out, nil
}

// FormatSelections renders selections in the syntax ParseSelections accepts.
func FormatSelections(sels []Selection) string {
	parts := make([]string, len(sels))
	for i, s := range sels {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}
