// Package validate handles the validate command
package validate

import (
	"fmt"
	"io"

	"fjacquet/datetools/cmd/root"
	"fjacquet/datetools/pkg/datetools"

	"github.com/spf13/cobra"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate DATE...",
	Short: "Check that dates exist in the calendar",
	Long: `Check that each date is well formed (day-first or year-first with the
input separator) and exists in the Gregorian calendar.

Example:
  datetools validate 29/02/2020 2019/2/29`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(root.Toolkit(), cmd.OutOrStdout(), args)
	},
}

func run(tk *datetools.Toolkit, out io.Writer, dates []string) error {
	invalid := 0
	for _, d := range dates {
		if err := tk.Validate(d); err != nil {
			invalid++
			fmt.Fprintf(out, "%s: %v\n", d, err)
			continue
		}
		fmt.Fprintf(out, "%s: valid\n", d)
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d dates are invalid", invalid, len(dates))
	}
	return nil
}
