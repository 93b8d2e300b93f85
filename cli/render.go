package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cron "github.com/kaiserkarel/cronexpand"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case formatText, formatJSON, formatYAML:
		return format, nil
	}
	return "", exitError(exitUsage, "unknown format %q, expected text, json or yaml", format)
}

type tabEntry struct {
	Line         int    `json:"line" yaml:"line"`
	Text         string `json:"text" yaml:"text"`
	cron.Summary `yaml:",inline"`
}

func renderExpression(w io.Writer, format string, expr *cron.Expression) error {
	if format == formatText {
		_, err := fmt.Fprintln(w, expr)
		return err
	}
	return encode(w, format, expr.Summary())
}

func renderTab(w io.Writer, format string, entries []cron.Entry) error {
	if format == formatText {
		for i, e := range entries {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "# line %d: %s\n", e.Line, e.Text); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, e.Expression); err != nil {
				return err
			}
		}
		return nil
	}

	// empty array rather than null when the tab holds no entries
	out := make([]tabEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, tabEntry{Line: e.Line, Text: e.Text, Summary: e.Expression.Summary()})
	}
	return encode(w, format, out)
}

func encode(w io.Writer, format string, v any) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
