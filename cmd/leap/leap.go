// Package leap handles the leap command
package leap

import (
	"fmt"
	"io"

	"fjacquet/datetools/pkg/datetools"

	"github.com/spf13/cobra"
)

// Cmd represents the leap command
var Cmd = &cobra.Command{
	Use:   "leap YEAR...",
	Short: "Tell whether four digit years are leap years",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		run(cmd.OutOrStdout(), args)
		return nil
	},
}

func run(out io.Writer, years []string) {
	for _, y := range years {
		if datetools.IsLeapYear(y) {
			fmt.Fprintf(out, "%s: leap\n", y)
		} else {
			fmt.Fprintf(out, "%s: not leap\n", y)
		}
	}
}
