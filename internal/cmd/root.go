package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/DevSymphony/regexify/internal/intent"
	"github.com/DevSymphony/regexify/internal/ui"
	"github.com/spf13/cobra"
)

// options holds state shared by the command tree.
type options struct {
	verbose bool
	catalog intent.Catalog
}

func (o *options) logger(cmd *cobra.Command) *ui.Logger {
	return ui.NewLogger(cmd.ErrOrStderr(), o.verbose)
}

// NewRootCmd builds the regexify command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{catalog: intent.Default()}
	format := newFormatValue(formatText, formatText, formatJSON)

	rootCmd := &cobra.Command{
		Use:   "regexify [request]",
		Short: "regexify - Generate regex patterns from plain-English matching requests",
		Long: `regexify maps a plain-English description of a data format to a
pre-written regular expression.

Supported requests mention one of: ` + opts.catalog.SupportedHint() + `.
If no request argument is given, the request is read from standard input.

Exit codes:
  0  pattern found
  1  no supported pattern detected
  2  no request provided, or invalid usage`,
		Example: `  regexify "match an email"
  regexify --format json "validate date MM/DD/YYYY"
  echo "check ipv4 address" | regexify`,
		Args:          usageArgs(cobra.MaximumNArgs(1)),
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := readRequest(cmd, args)
			if err != nil {
				return err
			}

			log := opts.logger(cmd)
			log.Debugf("request: %q", request)

			rule, err := opts.catalog.Resolve(request)
			if err != nil {
				return err
			}
			log.Debugf("matched intent %q on keywords [%s]", rule.Intent, strings.Join(rule.Keywords, ", "))

			return writeResult(cmd.OutOrStdout(), format.value, rule.Result())
		},
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output on stderr")
	rootCmd.Flags().Var(format, "format", "output format (text|json)")

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newPickCmd(opts))
	rootCmd.AddCommand(newOpenCmd(opts))
	rootCmd.AddCommand(newMCPCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI against the process streams and exits.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Run executes the command tree with the given arguments and streams and
// returns the process exit code. Errors are written to stderr.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.PrintError(stderr, err.Error())
		return exitCode(err)
	}
	return exitOK
}

// readRequest returns the trimmed request from args or, when absent, stdin.
func readRequest(cmd *cobra.Command, args []string) (string, error) {
	var request string
	if len(args) > 0 {
		request = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", &exitError{code: exitNoInput, msg: "failed to read stdin: " + err.Error()}
		}
		request = string(data)
	}

	request = strings.TrimSpace(request)
	if request == "" {
		return "", errNoRequest
	}
	return request, nil
}
