// Package editor applies BEM case formatting to the selections of a text
// document.
//
// The document lives behind the Host interface so the formatting logic does
// not depend on any particular editor. Buffer is the in-memory Host used by
// the CLI and the MCP server.
package editor

import (
	"context"
	"errors"
)

// Host is the editing surface a Formatter works against.
type Host interface {
	// Selections returns the current selections. Each has Start <= End.
	Selections() []Selection

	// Text returns the text within r.
	Text(r Range) string

	// LineTerminator returns the document's line terminator, "\n" or "\r\n".
	LineTerminator() string

	// Apply commits every edit of b or none of them.
	Apply(ctx context.Context, b *Batch) error
}

// Versioner is implemented by hosts that can fingerprint their content.
// Formatter records the version in each Batch so the host can reject edits
// computed against text that has since changed.
type Versioner interface {
	Version() string
}

var (
	// ErrStaleVersion indicates the document changed after a batch was computed.
	ErrStaleVersion = errors.New("document changed since edits were computed")

	// ErrOverlappingEdits indicates two edits of a batch touch the same text.
	ErrOverlappingEdits = errors.New("overlapping edits")

	// ErrInvalidSelection indicates a selection spec could not be parsed.
	ErrInvalidSelection = errors.New("invalid selection")
)
