package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/qnkhuat/polyterm/pkg"
	"github.com/qnkhuat/polyterm/pkg/mino"
)

const defaultWidth = 80

func newListCmd(f *flags) *cobra.Command {
	var (
		asJSON  bool
		plain   bool
		columns int
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print every piece of an order",
		Long: `Print the distinct pieces of an order as a sheet of blocks, or as JSON.

Examples:
  polyterm list --order 5
  polyterm list --order 4 --reflect --plain
  polyterm list --order 6 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			pieces, stats, err := mino.Enumerate(config.Order, config.Reflect)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				b, err := pkg.Encode(pkg.NewMessagePieceSet(config.Order, config.Reflect, pieces))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			}

			if columns < 1 {
				columns = pkg.SheetColumns(terminalWidth(), config.Order)
			}
			if err = pkg.WriteSheet(out, pieces, columns, plain); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "order %d: %d pieces in %s\n", stats.Order, stats.Accepted, stats.Elapsed)

			return nil
		},
	}

	listCmd.Flags().BoolVar(&asJSON, "json", false, "print the set as JSON")
	listCmd.Flags().BoolVar(&plain, "plain", false, "disable colors")
	listCmd.Flags().IntVar(&columns, "columns", 0, "pieces per row (default fits the terminal)")

	return listCmd
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}

	return width
}
