package cmd

import (
	"fmt"
	"net/url"

	"github.com/DevSymphony/regexify/internal/ui"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

const regex101URL = "https://regex101.com/"

// openURL is replaced in tests.
var openURL = browser.OpenURL

func newOpenCmd(opts *options) *cobra.Command {
	var noBrowser bool

	openCmd := &cobra.Command{
		Use:   "open [request]",
		Short: "Open the pattern for a request on regex101",
		Long: `Resolve the request to a pattern, print a regex101 link for it (Go flavor)
and open the link in the default browser.`,
		Example: `  regexify open "us phone number"
  regexify open --no-browser "http url"`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := readRequest(cmd, args)
			if err != nil {
				return err
			}

			rule, err := opts.catalog.Resolve(request)
			if err != nil {
				return err
			}

			link := playgroundURL(rule.Pattern)
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), link); err != nil {
				return err
			}

			if noBrowser {
				return nil
			}

			// Browser helpers write to browser.Stdout; keep stdout clean.
			browser.Stdout = cmd.ErrOrStderr()
			if err := openURL(link); err != nil {
				ui.PrintWarn(cmd.ErrOrStderr(), fmt.Sprintf("could not open browser: %v", err))
			}
			return nil
		},
	}

	openCmd.Flags().BoolVar(&noBrowser, "no-browser", false, "only print the link")

	return openCmd
}

// playgroundURL builds a regex101 link preloaded with pattern.
func playgroundURL(pattern string) string {
	q := url.Values{}
	q.Set("flavor", "golang")
	q.Set("regex", pattern)
	return regex101URL + "?" + q.Encode()
}
