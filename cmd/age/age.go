// Package age handles the age command
package age

import (
	"fmt"
	"io"
	"time"

	"fjacquet/datetools/cmd/root"
	"fjacquet/datetools/pkg/datetools"

	"github.com/spf13/cobra"
)

// Cmd represents the age command
var Cmd = &cobra.Command{
	Use:   "age BIRTH [ASOF]",
	Short: "Print an age in whole years",
	Long: `Print the age in whole years of someone born on BIRTH, as of ASOF or today.

Example:
  datetools age 15/06/1990 14/06/2020`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(root.Toolkit(), cmd.OutOrStdout(), args, time.Now())
	},
}

func run(tk *datetools.Toolkit, out io.Writer, args []string, now time.Time) error {
	born, err := tk.Time(args[0])
	if err != nil {
		return fmt.Errorf("birth date: %w", err)
	}

	asOf := now
	if len(args) == 2 {
		if asOf, err = tk.Time(args[1]); err != nil {
			return fmt.Errorf("reference date: %w", err)
		}
	}

	fmt.Fprintln(out, datetools.CalculateAge(born, asOf))
	return nil
}
