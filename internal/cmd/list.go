package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/DevSymphony/regexify/internal/intent"
	"github.com/DevSymphony/regexify/internal/ui"
	"github.com/DevSymphony/regexify/pkg/schema"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	format := newFormatValue(formatText, formatText, formatJSON, formatYAML)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the supported intents",
		Long: `List every intent in the catalog in match priority order, with the
keywords that select it and the pattern it resolves to.`,
		Example: `  regexify list
  regexify list --format yaml`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch format.value {
			case formatJSON:
				return schema.EncodeJSON(out, schema.IntentList{Intents: opts.catalog.Results()})
			case formatYAML:
				return schema.EncodeYAML(out, schema.IntentList{Intents: opts.catalog.Results()})
			default:
				return printCatalog(out, opts.catalog)
			}
		},
	}

	listCmd.Flags().Var(format, "format", "output format (text|json|yaml)")

	return listCmd
}

func printCatalog(w io.Writer, c intent.Catalog) error {
	for i, rule := range c {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s\n  keywords: %s\n  pattern:  %s\n  notes:    %s\n",
			ui.Title(w, rule.Intent),
			strings.Join(rule.Keywords, " + "),
			rule.Pattern,
			rule.Notes,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
