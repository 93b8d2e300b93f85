package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

// ExitError is an error that carries a specific process exit code.
// Cobra's RunE returns this to signal the desired exit code to main.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitError creates a new ExitError with the given code and formatted message.
func exitError(code int, format string, args ...any) *ExitError {
	return &ExitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// invalid wraps a parse failure; its message is shown to the user as is.
func invalid(err error) *ExitError {
	return &ExitError{
		Code:    exitInvalid,
		Message: err.Error(),
		Err:     err,
	}
}

// Execute runs cmd, writes any error to the command's error stream and
// returns the process exit code.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	fmt.Fprintln(cmd.ErrOrStderr(), err)

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitInvalid
}
