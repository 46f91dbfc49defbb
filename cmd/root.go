package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tarrence/bemcase/internal/bem"
	"github.com/tarrence/bemcase/internal/casing"
	"github.com/tarrence/bemcase/internal/editor"
	"github.com/tarrence/bemcase/internal/output"
	"github.com/tarrence/bemcase/internal/version"
	"golang.org/x/text/language"
)

type rootOptions struct {
	Output string

	Pretty   bool
	NoPretty bool

	Debug    bool
	LogLevel string

	Locale string
}

type appState struct {
	opts      rootOptions
	printer   *output.Printer
	logger    *slog.Logger
	locale    language.Tag
	formatter *editor.Formatter
}

func (a *appState) initFromFlags(cmd *cobra.Command) error {
	if a.opts.Pretty && a.opts.NoPretty {
		return fmt.Errorf("cannot set both --pretty and --no-pretty")
	}
	if err := output.ValidateFormat(a.opts.Output); err != nil {
		return fmt.Errorf("--output: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.opts.LogLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q (expected debug, info, warn or error)", a.opts.LogLevel)
	}
	if a.opts.Debug {
		level = slog.LevelDebug
	}

	tag := language.Und
	if a.opts.Locale != "" {
		t, err := language.Parse(a.opts.Locale)
		if err != nil {
			return fmt.Errorf("invalid --locale %q: %w", a.opts.Locale, err)
		}
		tag = t
	}

	a.printer = output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.PrinterOptions{
		Format:       a.opts.Output,
		ForcePretty:  a.opts.Pretty,
		ForceCompact: a.opts.NoPretty,
	})
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.locale = tag
	a.formatter = editor.NewFormatter(bem.New(casing.New(casing.WithLocale(tag))), a.logger)
	return nil
}

func (a *appState) contextWithApp(ctx context.Context) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

type appKey struct{}

func appFrom(cmd *cobra.Command) (*appState, error) {
	v := cmd.Context().Value(appKey{})
	if v == nil {
		return nil, errors.New("internal error: app state missing from command context")
	}
	a, ok := v.(*appState)
	if !ok {
		return nil, errors.New("internal error: app state has wrong type")
	}
	return a, nil
}

func NewRootCmd() *cobra.Command {
	app := &appState{
		opts: rootOptions{
			Output:   output.FormatText,
			LogLevel: "warn",
		},
	}

	root := &cobra.Command{
		Use:   version.Name,
		Short: "Rewrite identifiers into BEM naming conventions",
		Long: "Rewrite identifiers into BEM naming conventions (block__element--modifier).\n\n" +
			"Dots and whitespace separate identifiers; the __ and -- BEM separators are kept\n" +
			"and every piece between them is case converted.\n\n" +
			"Input:\n" +
			"  text arguments, else --file (\"-\" for stdin), else stdin\n\n" +
			"Examples:\n" +
			"  bemcase pascal-camel my-block__my-element--is-active\n" +
			"  bemcase kebab --file styles.scss --selection 3:1-3:24 --write\n" +
			"  cat component.tsx | bemcase kebab -o json\n",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.initFromFlags(cmd); err != nil {
				return err
			}
			cmd.SetContext(app.contextWithApp(cmd.Context()))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&app.opts.Output, "output", "o", app.opts.Output, "Output format: text, json or yaml (or set BEMCASE_OUTPUT)")
	root.PersistentFlags().BoolVar(&app.opts.Pretty, "pretty", false, "Force pretty-printed output")
	root.PersistentFlags().BoolVar(&app.opts.NoPretty, "no-pretty", false, "Force compact (non-pretty) output")

	root.PersistentFlags().BoolVar(&app.opts.Debug, "debug", false, "Log per-selection decisions to stderr (same as --log-level debug)")
	root.PersistentFlags().StringVar(&app.opts.LogLevel, "log-level", app.opts.LogLevel, "Log level: debug, info, warn or error (or set BEMCASE_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&app.opts.Locale, "locale", "", "BCP 47 language tag used for case mapping, e.g. tr (or set BEMCASE_LOCALE)")

	root.SetVersionTemplate("{{.Version}}\n")
	root.Version = version.Version()

	root.AddCommand(newFormatCmd(bem.ModePascalCamel))
	root.AddCommand(newFormatCmd(bem.ModeKebab))
	root.AddCommand(newMCPCmd())
	root.AddCommand(newVersionCmd())

	// Flag defaults from BEMCASE_* env vars
	for flag, env := range map[string]string{
		"output":    "BEMCASE_OUTPUT",
		"log-level": "BEMCASE_LOG_LEVEL",
		"locale":    "BEMCASE_LOCALE",
	} {
		if v := os.Getenv(env); v != "" {
			_ = root.PersistentFlags().Set(flag, v)
		}
	}

	return root
}
