package editor

import (
	"context"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/zeebo/blake3"
)

// Buffer is an in-memory document implementing Host. It is safe for
// concurrent use.
type Buffer struct {
	mu sync.Mutex

	text       string
	eol        string
	lineStarts []int // byte offset of each line

	selections []Selection
}

var _ interface {
	Host
	Versioner
} = (*Buffer)(nil)

// NewBuffer returns a buffer holding text, with no selections. The line
// terminator is "\r\n" when the first line break of text is CRLF and "\n"
// otherwise.
func NewBuffer(text string) *Buffer {
	b := &Buffer{eol: detectLineTerminator(text)}
	b.setText(text)
	return b
}

func detectLineTerminator(text string) string {
	i := strings.IndexByte(text, '\n')
	if i > 0 && text[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

func (b *Buffer) setText(text string) {
	b.text = text
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for off := 0; ; {
		i := strings.Index(text[off:], b.eol)
		if i < 0 {
			break
		}
		off += i + len(b.eol)
		b.lineStarts = append(b.lineStarts, off)
	}
}

// String returns the document text.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// LineTerminator implements Host.
func (b *Buffer) LineTerminator() string {
	return b.eol
}

// LineCount returns the number of lines. An empty document has one line.
func (b *Buffer) LineCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lineStarts)
}

// Version returns the BLAKE3-256 digest of the document text, hex encoded.
func (b *Buffer) Version() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.versionLocked()
}

func (b *Buffer) versionLocked() string {
	sum := blake3.Sum256([]byte(b.text))
	return hex.EncodeToString(sum[:])
}

// Selections implements Host.
func (b *Buffer) Selections() []Selection {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Selection(nil), b.selections...)
}

// SetSelections replaces the selections. Positions outside the document are
// clamped to it and each selection is put in document order.
func (b *Buffer) SetSelections(sels []Selection) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.setSelectionsLocked(sels)
}

func (b *Buffer) setSelectionsLocked(sels []Selection) {
	b.selections = b.selections[:0]
	for _, s := range sels {
		start, _ := b.resolve(s.Start)
		end, _ := b.resolve(s.End)
		b.selections = append(b.selections, NewSelection(start, end))
	}
}

// SelectAll selects the whole document.
func (b *Buffer) SelectAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	last := len(b.lineStarts) - 1
	end := Position{Line: last, Character: utf16Len(b.line(last))}
	b.selections = []Selection{{Start: Position{}, End: end}}
}

// Text implements Host.
func (b *Buffer) Text(r Range) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, start := b.resolve(r.Start)
	_, end := b.resolve(r.End)
	if end < start {
		start, end = end, start
	}
	return b.text[start:end]
}

// Apply implements Host. The batch is rejected as a whole when it was
// computed against another version of the document, when an edit's original
// text no longer matches, or when two edits overlap.
func (b *Buffer) Apply(ctx context.Context, batch *Batch) error {
	if batch == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if batch.BaseVersion != "" && batch.BaseVersion != b.versionLocked() {
		return ErrStaleVersion
	}

	type span struct {
		start, end int
		edit       *Edit
	}
	spans := make([]span, 0, len(batch.Edits))
	for i := range batch.Edits {
		e := &batch.Edits[i]
		_, start := b.resolve(e.Range.Start)
		_, end := b.resolve(e.Range.End)
		if end < start {
			start, end = end, start
		}
		if b.text[start:end] != e.Original {
			return fmt.Errorf("edit %s: %w", e.Range, ErrStaleVersion)
		}
		spans = append(spans, span{start: start, end: end, edit: e})
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			return fmt.Errorf("%s and %s: %w", spans[i-1].edit.Range, spans[i].edit.Range, ErrOverlappingEdits)
		}
	}

	var sb strings.Builder
	sb.Grow(len(b.text))
	prev := 0
	for _, s := range spans {
		sb.WriteString(b.text[prev:s.start])
		sb.WriteString(s.edit.Replacement)
		prev = s.end
	}
	sb.WriteString(b.text[prev:])
	b.setText(sb.String())

	if batch.Selections != nil {
		b.setSelectionsLocked(batch.Selections)
	}
	return nil
}

// line returns the content of line i without its terminator.
func (b *Buffer) line(i int) string {
	start := b.lineStarts[i]
	end := len(b.text)
	if i+1 < len(b.lineStarts) {
		end = b.lineStarts[i+1] - len(b.eol)
	}
	return b.text[start:end]
}

// resolve clamps p to the document and returns it with its byte offset.
func (b *Buffer) resolve(p Position) (Position, int) {
	if p.Line < 0 {
		return Position{}, 0
	}
	if p.Line >= len(b.lineStarts) {
		last := len(b.lineStarts) - 1
		return Position{Line: last, Character: utf16Len(b.line(last))}, len(b.text)
	}
	off, char := byteOffset(b.line(p.Line), p.Character)
	return Position{Line: p.Line, Character: char}, b.lineStarts[p.Line] + off
}
