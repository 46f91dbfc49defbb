// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the BEM formatting commands as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tarrence/bemcase/internal/bem"
	"github.com/tarrence/bemcase/internal/casing"
	"github.com/tarrence/bemcase/internal/editor"
	"github.com/tarrence/bemcase/internal/version"
	"golang.org/x/text/language"
)

const serverInstructions = `bemcase MCP server: rewrites identifiers into BEM naming conventions (block__element--modifier).

Tools take the document text and an optional selection list such as "0:4-0:20,3:0-5:12" (zero-based line:character positions, characters counted in UTF-16 code units). Without selections the whole document is formatted. Dots and whitespace split identifiers; the "__" and "--" separators are kept.

Configuration via environment variables:
- BEMCASE_LOCALE (default: language neutral): BCP 47 tag used for case mapping, e.g. "tr"
- BEMCASE_MAX_TEXT_SIZE (default: 1048576): largest accepted document in bytes`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled. An undetermined locale falls back to
// BEMCASE_LOCALE.
func Run(ctx context.Context, logger *slog.Logger, locale language.Tag) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if locale == language.Und {
		locale = cfg.Locale
	}
	server := mcp.NewServer(
		&mcp.Implementation{Name: version.Name, Version: version.Short()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, newToolSet(logger, locale))
	logger.Debug("serving MCP over stdio", "locale", locale.String())
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server, ts *toolSet) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_pascal_camel_bem",
		Description: "Format to Pascal/Camel BEM. Each selected identifier becomes PascalCase for the block and camelCase for elements and modifiers: \"my_block__my-element--is_active\" becomes \"MyBlock__myElement--isActive\". Returns the resulting document, the applied edits and the updated selections.",
	}, ts.handlePascalCamel)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_kebab_bem",
		Description: "Format to Kebab BEM. Each selected identifier becomes kebab-case in every position: \"MyBlock__myElement--isActive\" becomes \"my-block__my-element--is-active\". Returns the resulting document, the applied edits and the updated selections.",
	}, ts.handleKebab)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

type toolSet struct {
	formatter *editor.Formatter
}

func newToolSet(logger *slog.Logger, locale language.Tag) *toolSet {
	rules := casing.New(casing.WithLocale(locale))
	return &toolSet{formatter: editor.NewFormatter(bem.New(rules), logger)}
}

type formatInput struct {
	Text       string `json:"text"                 jsonschema:"The document to format"`
	Selections string `json:"selections,omitempty" jsonschema:"Comma separated selections as line:char or line:char-line:char; empty formats the whole document"`
}

type formatOutput struct {
	Text       string             `json:"text"`
	Changed    bool               `json:"changed"`
	BatchID    string             `json:"batch_id,omitempty"`
	Skipped    int                `json:"skipped"`
	Edits      []editor.Edit      `json:"edits,omitempty"`
	Selections []editor.Selection `json:"selections,omitempty"`
}

func (ts *toolSet) handlePascalCamel(ctx context.Context, _ *mcp.CallToolRequest, input formatInput) (*mcp.CallToolResult, formatOutput, error) {
	return ts.format(ctx, input, bem.ModePascalCamel)
}

func (ts *toolSet) handleKebab(ctx context.Context, _ *mcp.CallToolRequest, input formatInput) (*mcp.CallToolResult, formatOutput, error) {
	return ts.format(ctx, input, bem.ModeKebab)
}

func (ts *toolSet) format(ctx context.Context, input formatInput, mode bem.Mode) (*mcp.CallToolResult, formatOutput, error) {
	if len(input.Text) > cfg.MaxTextSize {
		return errResult(fmt.Errorf("text is %d bytes, limit is %d (BEMCASE_MAX_TEXT_SIZE)", len(input.Text), cfg.MaxTextSize)), formatOutput{}, nil
	}
	sels, err := editor.ParseSelections(input.Selections)
	if err != nil {
		return errResult(err), formatOutput{}, nil
	}

	text, report, err := ts.formatter.FormatString(ctx, input.Text, sels, mode)
	if err != nil {
		return errResult(err), formatOutput{}, nil
	}

	return nil, formatOutput{
		Text:       text,
		Changed:    report.Changed(),
		BatchID:    report.BatchID,
		Skipped:    report.Skipped,
		Edits:      report.Edits,
		Selections: report.Selections,
	}, nil
}
