package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/DevSymphony/regexify/internal/intent"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newPickCmd(opts *options) *cobra.Command {
	format := newFormatValue(formatText, formatText, formatJSON, formatYAML)

	pickCmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose an intent interactively",
		Long: `Browse the catalog in an interactive menu and print the selected pattern.
Press / to fuzzy-search intents by name. The menu is drawn on stderr so
stdout carries only the result.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, ok := cmd.InOrStdin().(*os.File)
			if !ok || !term.IsTerminal(int(in.Fd())) {
				return usageError(errors.New("pick requires an interactive terminal"))
			}

			templates := &promptui.SelectTemplates{
				Label:    "{{ . }}?",
				Active:   "▸ {{ .Intent | cyan }}",
				Inactive: "  {{ .Intent }}",
				Selected: "✓ {{ .Intent | green }}",
				Details: `
{{ "pattern:" | faint }} {{ .Pattern }}
{{ "notes:" | faint }}   {{ .Notes }}`,
			}

			selectPrompt := promptui.Select{
				Label:     "Which pattern do you need",
				Items:     opts.catalog.Results(),
				Templates: templates,
				Size:      len(opts.catalog),
				Searcher:  intentSearcher(opts.catalog),
				Stdin:     in,
				Stdout:    os.Stderr,
			}

			index, _, err := selectPrompt.Run()
			if err != nil {
				if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
					return &exitError{code: exitNoMatch, msg: "selection cancelled"}
				}
				return fmt.Errorf("prompt failed: %w", err)
			}

			rule := opts.catalog[index]
			opts.logger(cmd).Debugf("picked intent %q", rule.Intent)
			return writeResult(cmd.OutOrStdout(), format.value, rule.Result())
		},
	}

	pickCmd.Flags().Var(format, "format", "output format (text|json|yaml)")

	return pickCmd
}

// intentSearcher filters menu entries by fuzzy match against the intent name.
func intentSearcher(c intent.Catalog) func(input string, index int) bool {
	return func(input string, index int) bool {
		if index < 0 || index >= len(c) {
			return false
		}
		for _, rule := range c.Search(strings.TrimSpace(input)) {
			if rule.Intent == c[index].Intent {
				return true
			}
		}
		return false
	}
}
