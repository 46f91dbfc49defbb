package editor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/tarrence/bemcase/internal/bem"
)

// Formatter rewrites the selected text of a Host into a BEM convention.
type Formatter struct {
	transformer *bem.Transformer
	logger      *slog.Logger
}

// NewFormatter returns a Formatter. A nil transformer uses the default case
// rules; a nil logger discards log output.
func NewFormatter(t *bem.Transformer, logger *slog.Logger) *Formatter {
	if t == nil {
		t = bem.New(nil)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Formatter{transformer: t, logger: logger}
}

// Report describes what a Format call did.
type Report struct {
	BatchID string `json:"batch_id,omitempty" yaml:"batch_id,omitempty"`
	Mode    string `json:"mode" yaml:"mode"`

	Edits []Edit `json:"edits,omitempty" yaml:"edits,omitempty"`

	// Selections holds the selections after formatting, one per input
	// selection.
	Selections []Selection `json:"selections,omitempty" yaml:"selections,omitempty"`

	// Skipped counts selections whose text was already formatted.
	Skipped int `json:"skipped" yaml:"skipped"`
}

// Changed reports whether any edit was applied.
func (r *Report) Changed() bool {
	return r != nil && len(r.Edits) > 0
}

// Format rewrites every selection of host for mode and applies the result
// as a single batch. A nil host, a host without selections, or selections
// that are already formatted leave the document untouched.
func (f *Formatter) Format(ctx context.Context, host Host, mode bem.Mode) (*Report, error) {
	report := &Report{Mode: mode.String()}
	if host == nil {
		f.logger.Debug("no document, nothing to format")
		return report, nil
	}
	selections := host.Selections()
	if len(selections) == 0 {
		f.logger.Debug("no selections, nothing to format")
		return report, nil
	}

	batch := &Batch{
		ID:   uuid.NewString(),
		Mode: mode,
	}
	if v, ok := host.(Versioner); ok {
		batch.BaseVersion = v.Version()
	}
	eol := host.LineTerminator()

	results := make([]selectionResult, len(selections))
	for i, sel := range selections {
		text := host.Text(sel.Range())
		replacement, delta := f.replace(text, sel.IsSingleLine(), eol, mode)
		results[i] = selectionResult{sel: sel, text: text, replacement: replacement, delta: delta}
	}

	for i, res := range results {
		r := res.sel.Range()
		newRange := r
		newRange.Start.Character += lineShift(results, i, r.Start)
		if res.sel.IsCursor() {
			newRange.End = newRange.Start
		} else {
			newRange.End.Character += lineShift(results, i, r.End) + res.delta
		}
		batch.Selections = append(batch.Selections, Selection{Start: newRange.Start, End: newRange.End})

		if !res.changed() {
			report.Skipped++
			f.logger.Debug("selection already formatted", "range", r.String(), "mode", mode.String())
			continue
		}
		batch.Edits = append(batch.Edits, Edit{
			Range:       r,
			Original:    res.text,
			Replacement: res.replacement,
			NewRange:    newRange,
		})
		f.logger.Debug("selection formatted", "range", r.String(), "new_range", newRange.String(), "delta", res.delta)
	}
	report.Selections = batch.Selections

	if len(batch.Edits) == 0 {
		return report, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := host.Apply(ctx, batch); err != nil {
		return nil, fmt.Errorf("apply batch %s: %w", batch.ID, err)
	}
	f.logger.Info("formatted selections", "batch", batch.ID, "mode", mode.String(), "edits", len(batch.Edits), "skipped", report.Skipped)

	report.BatchID = batch.ID
	report.Edits = batch.Edits
	return report, nil
}

type selectionResult struct {
	sel         Selection
	text        string
	replacement string
	delta       int // UTF-16 length change of the last line
}

func (r selectionResult) changed() bool {
	return r.replacement != r.text
}

// lineShift returns how far p moves along its line once every edit except
// results[self] is applied: the sum of the deltas of edits that end on p's
// line at or before p. Edits never add or remove lines, so positions on
// other lines do not move.
func lineShift(results []selectionResult, self int, p Position) int {
	n := 0
	for i, res := range results {
		if i == self || !res.changed() {
			continue
		}
		end := res.sel.End
		if end.Line == p.Line && end.Character <= p.Character {
			n += res.delta
		}
	}
	return n
}

// FormatString formats text held in a fresh Buffer and returns the resulting
// document. With no selections the whole document is formatted.
func (f *Formatter) FormatString(ctx context.Context, text string, sels []Selection, mode bem.Mode) (string, *Report, error) {
	buf := NewBuffer(text)
	if len(sels) == 0 {
		buf.SelectAll()
	} else {
		buf.SetSelections(sels)
	}
	report, err := f.Format(ctx, buf, mode)
	if err != nil {
		return "", nil, err
	}
	return buf.String(), report, nil
}

// replace returns the formatted text and the change in UTF-16 length of its
// last line. Multi-line text is formatted line by line so that line breaks
// and the line count are preserved.
func (f *Formatter) replace(text string, singleLine bool, eol string, mode bem.Mode) (string, int) {
	if singleLine {
		out := f.transformer.Transform(text, mode)
		return out, utf16Len(out) - utf16Len(text)
	}
	lines := strings.Split(text, eol)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = f.transformLine(line, mode)
	}
	last := len(lines) - 1
	return strings.Join(out, eol), utf16Len(out[last]) - utf16Len(lines[last])
}

// transformLine transforms one line of a multi-line selection. Line break
// characters left at either end, such as the "\r" of a CRLF line in an LF
// document, are kept as they are.
func (f *Formatter) transformLine(line string, mode bem.Mode) string {
	body := strings.TrimLeft(line, "\r\n")
	head := line[:len(line)-len(body)]
	core := strings.TrimRight(body, "\r\n")
	tail := body[len(core):]
	return head + f.transformer.Transform(core, mode) + tail
}
