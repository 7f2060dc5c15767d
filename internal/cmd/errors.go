package cmd

import (
	"errors"

	"github.com/DevSymphony/regexify/internal/intent"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	exitOK      = 0
	exitNoMatch = 1
	exitFailure = 1
	exitNoInput = 2
	exitUsage   = 2
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	return e.msg
}

// errNoRequest is returned when neither an argument nor stdin supplied text.
var errNoRequest = &exitError{code: exitNoInput, msg: "provide a request argument or stdin text."}

// usageError marks err as a command-line usage problem.
func usageError(err error) error {
	return &exitError{code: exitUsage, msg: err.Error()}
}

// usageArgs wraps a positional args validator so its failures exit as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// exitCode maps an error returned by the command tree to a process exit code.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	var nm *intent.NoMatchError
	if errors.As(err, &nm) {
		return exitNoMatch
	}

	return exitFailure
}
