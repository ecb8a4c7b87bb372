// Package days handles the days command
package days

import (
	"fmt"
	"io"

	"fjacquet/datetools/cmd/root"
	"fjacquet/datetools/pkg/datetools"

	"github.com/spf13/cobra"
)

// Cmd represents the days command
var Cmd = &cobra.Command{
	Use:   "days FIRST SECOND",
	Short: "Print the number of days between two dates",
	Long: `Print the number of days from FIRST to SECOND. FIRST must be strictly
before SECOND.

Example:
  datetools days 01/01/2020 31/01/2020`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(root.Toolkit(), cmd.OutOrStdout(), args[0], args[1])
	},
}

func run(tk *datetools.Toolkit, out io.Writer, first, second string) error {
	n, err := tk.Days(first, second)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, n)
	return nil
}
