package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tarrence/bemcase/internal/bem"
	"github.com/tarrence/bemcase/internal/editor"
)

type formatOptions struct {
	File      string
	Selection string
	Write     bool
}

// formatResult is the structured (json/yaml) output of a format command.
type formatResult struct {
	File       string             `json:"file,omitempty" yaml:"file,omitempty"`
	Mode       string             `json:"mode" yaml:"mode"`
	Changed    bool               `json:"changed" yaml:"changed"`
	BatchID    string             `json:"batch_id,omitempty" yaml:"batch_id,omitempty"`
	Skipped    int                `json:"skipped" yaml:"skipped"`
	Edits      []editor.Edit      `json:"edits,omitempty" yaml:"edits,omitempty"`
	Selections []editor.Selection `json:"selections,omitempty" yaml:"selections,omitempty"`
	Text       string             `json:"text" yaml:"text"`
}

func newFormatCmd(mode bem.Mode) *cobra.Command {
	var opts formatOptions

	c := &cobra.Command{
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, mode, opts)
		},
	}
	switch mode {
	case bem.ModePascalCamel:
		c.Use = "pascal-camel [text...]"
		c.Aliases = []string{"format-pascal-camel-bem", "pc"}
		c.Short = "Format to Pascal/Camel BEM"
		c.Long = "Format to Pascal/Camel BEM: PascalCase blocks, camelCase elements and modifiers.\n\n" +
			"  my-block__my-element--is-active  ->  MyBlock__myElement--isActive\n"
	default:
		c.Use = "kebab [text...]"
		c.Aliases = []string{"format-kebab-bem", "kb"}
		c.Short = "Format to Kebab BEM"
		c.Long = "Format to Kebab BEM: kebab-case blocks, elements and modifiers.\n\n" +
			"  MyBlock__myElement--isActive  ->  my-block__my-element--is-active\n"
	}

	c.Flags().StringVarP(&opts.File, "file", "f", "", "Read the document from a file (\"-\" for stdin)")
	c.Flags().StringVarP(&opts.Selection, "selection", "s", "", "Selections to format, e.g. 0:4-0:20,3:0-5:12 (default: whole document)")
	c.Flags().BoolVarP(&opts.Write, "write", "w", false, "Write the result back to --file instead of printing it")
	return c
}

func runFormat(cmd *cobra.Command, args []string, mode bem.Mode, opts formatOptions) error {
	app, err := appFrom(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 && opts.File != "" {
		return errors.New("cannot combine text arguments with --file")
	}
	if opts.Write && (opts.File == "" || opts.File == "-") {
		return errors.New("--write requires --file with a path")
	}

	sels, err := editor.ParseSelections(opts.Selection)
	if err != nil {
		return fmt.Errorf("--selection: %w", err)
	}
	text, err := readDocument(cmd, args, opts.File)
	if err != nil {
		return err
	}

	doc, report, err := app.formatter.FormatString(cmd.Context(), text, sels, mode)
	if err != nil {
		return err
	}

	if opts.Write && report.Changed() {
		if err := writeFilePreservingMode(opts.File, doc); err != nil {
			return err
		}
	}

	if app.printer.Structured() {
		res := formatResult{
			Mode:       report.Mode,
			Changed:    report.Changed(),
			BatchID:    report.BatchID,
			Skipped:    report.Skipped,
			Edits:      report.Edits,
			Selections: report.Selections,
			Text:       doc,
		}
		if opts.File != "-" {
			res.File = opts.File
		}
		return app.printer.PrintStructured(res)
	}
	if opts.Write {
		if report.Changed() {
			app.printer.Notef("%s: %d edit(s)", opts.File, len(report.Edits))
		} else {
			app.printer.Notef("%s: already formatted", opts.File)
		}
		return nil
	}
	return app.printer.PrintDocument(doc)
}

func readDocument(cmd *cobra.Command, args []string, file string) (string, error) {
	switch {
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case file == "" || file == "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	default:
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read --file: %w", err)
		}
		return string(b), nil
	}
}

func writeFilePreservingMode(path, text string) error {
	perm := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(text), perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
