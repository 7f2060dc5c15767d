package cmd

import (
	"fmt"
	"strings"

	"github.com/DevSymphony/regexify/internal/ui"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <request> <sample>...",
		Short: "Check sample strings against the pattern for a request",
		Long: `Resolve the request to a pattern and report whether each sample matches it.
Exits 0 only when every sample matches.`,
		Example: `  regexify check "match an email" user@example.com not-an-email`,
		Args:    usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := strings.TrimSpace(args[0])
			if request == "" {
				return errNoRequest
			}

			rule, err := opts.catalog.Resolve(request)
			if err != nil {
				return err
			}
			opts.logger(cmd).Debugf("checking %d sample(s) against intent %q", len(args)-1, rule.Intent)

			re, err := rule.Compile()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, sample := range args[1:] {
				line := ui.Match(out, sample)
				if !re.MatchString(sample) {
					failed++
					line = ui.NoMatch(out, sample)
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}

			if failed > 0 {
				return &exitError{
					code: exitNoMatch,
					msg:  fmt.Sprintf("%d of %d sample(s) did not match %s", failed, len(args)-1, rule.Intent),
				}
			}
			return nil
		},
	}
}
