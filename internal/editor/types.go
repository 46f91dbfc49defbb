package editor

import (
	"fmt"

	"github.com/tarrence/bemcase/internal/bem"
)

// Position is a zero-based line and character offset. Character counts
// UTF-16 code units, matching how editor hosts address text.
type Position struct {
	Line      int `json:"line" yaml:"line"`
	Character int `json:"character" yaml:"character"`
}

// Before reports whether p comes strictly before o.
func (p Position) Before(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Character < o.Character
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

// Range is the span between two positions, Start inclusive, End exclusive.
type Range struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

// IsEmpty reports whether the range covers no text.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r Range) String() string {
	if r.IsEmpty() {
		return r.Start.String()
	}
	return r.Start.String() + "-" + r.End.String()
}

// Selection is a selected range of a document. Start never comes after End.
type Selection struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

// NewSelection returns the selection between a and b in document order.
func NewSelection(a, b Position) Selection {
	if b.Before(a) {
		a, b = b, a
	}
	return Selection{Start: a, End: b}
}

// Cursor returns a zero-width selection at p.
func Cursor(p Position) Selection {
	return Selection{Start: p, End: p}
}

// Range returns the selected range.
func (s Selection) Range() Range {
	return Range{Start: s.Start, End: s.End}
}

// IsSingleLine reports whether the selection starts and ends on the same line.
func (s Selection) IsSingleLine() bool {
	return s.Start.Line == s.End.Line
}

// IsCursor reports whether the selection is zero-width.
func (s Selection) IsCursor() bool {
	return s.Start == s.End
}

func (s Selection) String() string {
	return s.Range().String()
}

// Edit replaces the text of Range. NewRange is where the replaced text ends
// up once the edit is applied.
type Edit struct {
	Range       Range  `json:"range" yaml:"range"`
	Original    string `json:"original" yaml:"original"`
	Replacement string `json:"replacement" yaml:"replacement"`
	NewRange    Range  `json:"new_range" yaml:"new_range"`
}

// Batch is a set of edits submitted to a host as one all-or-nothing unit.
type Batch struct {
	ID   string
	Mode bem.Mode

	// BaseVersion is the document version the edits were computed against,
	// or "" when the host does not report versions.
	BaseVersion string

	Edits []Edit

	// Selections are the selections to install after the edits, one per
	// selection the batch was computed from.
	Selections []Selection
}
