package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"
	"golang.org/x/term"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateFormat reports whether format is one of the supported output formats.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format %q (expected %s, %s or %s)", format, FormatText, FormatJSON, FormatYAML)
	}
}

type PrinterOptions struct {
	Format string

	ForcePretty  bool
	ForceCompact bool
}

type Printer struct {
	out io.Writer
	err io.Writer

	format string
	pretty bool
}

func NewPrinter(out io.Writer, err io.Writer, opts PrinterOptions) *Printer {
	pretty := false
	if opts.ForcePretty {
		pretty = true
	} else if opts.ForceCompact {
		pretty = false
	} else {
		// auto
		if f, ok := out.(*os.File); ok {
			pretty = term.IsTerminal(int(f.Fd()))
		}
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	return &Printer{
		out: out,
		err: err,

		format: format,
		pretty: pretty,
	}
}

func (p *Printer) Format() string   { return p.format }
func (p *Printer) Structured() bool { return p.format != FormatText }

// PrintDocument writes text unchanged. On a terminal a missing trailing
// newline is added so the shell prompt starts on its own line.
func (p *Printer) PrintDocument(text string) error {
	if _, err := io.WriteString(p.out, text); err != nil {
		return err
	}
	if p.pretty && !strings.HasSuffix(text, "\n") {
		_, _ = io.WriteString(p.out, "\n")
	}
	return nil
}

// PrintStructured writes v as JSON or YAML depending on the printer format.
func (p *Printer) PrintStructured(v any) error {
	var out []byte
	switch p.format {
	case FormatJSON:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling to json: %w", err)
		}
		out = b
		if p.pretty {
			var buf bytes.Buffer
			if err := json.Indent(&buf, b, "", "  "); err == nil {
				out = buf.Bytes()
			}
		}
	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling to yaml: %w", err)
		}
		out = b
	default:
		return fmt.Errorf("invalid format for structured output: %s", p.format)
	}

	if _, err := p.out.Write(out); err != nil {
		return err
	}
	if len(out) == 0 || out[len(out)-1] != '\n' {
		_, _ = p.out.Write([]byte("\n"))
	}
	return nil
}

// Notef writes a status line to the error stream.
func (p *Printer) Notef(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = io.WriteString(p.err, msg)
}
