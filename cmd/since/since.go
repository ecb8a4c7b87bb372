// Package since handles the since command
package since

import (
	"fmt"
	"io"
	"time"

	"fjacquet/datetools/cmd/root"
	"fjacquet/datetools/pkg/datetools"

	"github.com/spf13/cobra"
)

// Cmd represents the since command
var Cmd = &cobra.Command{
	Use:   "since DATE",
	Short: "Print the number of days since a past date",
	Long: `Print the number of days between DATE and today. DATE must be before today.

Example:
  datetools since 01/01/2000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(root.Toolkit(), cmd.OutOrStdout(), args[0], time.Now())
	},
}

func run(tk *datetools.Toolkit, out io.Writer, date string, now time.Time) error {
	n, err := tk.DaysPastAt(date, now)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, n)
	return nil
}
