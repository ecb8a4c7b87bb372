// Package clean handles the clean command
package clean

import (
	"fmt"
	"io"

	"fjacquet/datetools/cmd/root"
	"fjacquet/datetools/pkg/datetools"

	"github.com/spf13/cobra"
)

// Cmd represents the clean command
var Cmd = &cobra.Command{
	Use:   "clean DATE...",
	Short: "Normalize dates to a zero-padded canonical form",
	Long: `Normalize each date to zero-padded fields joined by the output separator,
in the output order. Anything after a space, such as a time, is dropped.

Example:
  datetools clean --in-sep - --order y "2020-3-7 12:00"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(root.Toolkit(), cmd.OutOrStdout(), args)
	},
}

func run(tk *datetools.Toolkit, out io.Writer, dates []string) error {
	for _, d := range dates {
		cleaned, err := tk.Clean(d)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, cleaned)
	}
	return nil
}
