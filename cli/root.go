package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	cron "github.com/kaiserkarel/cronexpand"
)

const lineShape = "[minute] [hour] [day of month] [month] [day of week] [command]"

// NewRootCmd creates the cronexpand command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     `cronexpand "<cron line>"`,
		Short:   "Expand a cron line into the values each field matches",
		Example: `  cronexpand "*/15 0 1,15 * 1-5 /usr/bin/find"`,
		Args:    singleLine,
		RunE:    runExpand,
		// errors are printed once by Execute
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().String("format", formatText, "Output format: text | json | yaml")
	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging on stderr")

	cmd.AddCommand(NewTabCmd())
	return cmd
}

func singleLine(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return exitError(exitUsage, "expected a single argument %q but got %q", lineShape, args)
	}
	return nil
}

func runExpand(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	parser, err := newParser(cmd)
	if err != nil {
		return err
	}

	expr, err := parser.Parse(args[0])
	if err != nil {
		return invalid(err)
	}
	return renderExpression(cmd.OutOrStdout(), format, expr)
}

// newParser builds a parser whose debug output goes to the command's error
// stream when --verbose is set.
func newParser(cmd *cobra.Command) (*cron.Parser, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")

	logger := zap.NewNop()
	if verbose {
		logger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(cmd.ErrOrStderr()),
			zap.DebugLevel,
		))
	}
	return cron.New(cron.WithLogger(logger))
}
