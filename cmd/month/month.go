// Package month handles the month command
package month

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/datetools/pkg/datetools"

	"github.com/spf13/cobra"
)

// Cmd represents the month command
var Cmd = &cobra.Command{
	Use:   "month \"MONTH YEAR\"",
	Short: "Abbreviate a month and year, e.g. \"October 2018\" to Oct-18",
	Long: `Abbreviate a full English month name and four digit year. The words may be
given as one quoted argument or as two arguments.

Example:
  datetools month "October 2018"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout(), args)
	},
}

func run(out io.Writer, args []string) error {
	s, err := datetools.MonthYear(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, s)
	return nil
}
