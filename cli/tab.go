package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewTabCmd creates the "tab" subcommand.
func NewTabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tab <file>",
		Short: "Expand every entry of a crontab file",
		Args:  cobra.ExactArgs(1),
		RunE:  runTab,
	}
}

func runTab(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	parser, err := newParser(cmd)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return exitError(exitUsage, "file not found: %s", args[0])
		}
		return fmt.Errorf("opening tab: %w", err)
	}
	defer f.Close()

	entries, err := parser.ReadTab(f)
	if err != nil {
		return invalid(err)
	}
	return renderTab(cmd.OutOrStdout(), format, entries)
}
