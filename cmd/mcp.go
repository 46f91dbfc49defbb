package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tarrence/bemcase/internal/mcpserver"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the BEM formatting tools over MCP (stdio)",
		Long: "Serve format_pascal_camel_bem and format_kebab_bem as Model Context Protocol\n" +
			"tools over stdin/stdout. Logs go to stderr. --locale applies to both tools.\n",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			return mcpserver.Run(cmd.Context(), app.logger, app.locale)
		},
	}
}
