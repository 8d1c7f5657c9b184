package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qnkhuat/polyterm/pkg"
	"github.com/qnkhuat/polyterm/pkg/mino"
)

func newExportCmd(f *flags) *cobra.Command {
	var output string
	png := pkg.DefaultPNGOptions()

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write every piece of an order to a PNG image",
		Long: `Render the distinct pieces of an order on a grid and save it as PNG.

Examples:
  polyterm export --order 5
  polyterm export --order 6 -o hexominoes.png --cell 24 --columns 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			pieces, _, err := mino.Enumerate(config.Order, config.Reflect)
			if err != nil {
				return err
			}

			if output == "" {
				output = config.ExportPath(config.Order)
			}
			if err = pkg.ExportPNG(output, config.Order, pieces, png); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pieces to %s\n", len(pieces), output)

			return nil
		},
	}

	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default from config)")
	exportCmd.Flags().IntVar(&png.CellSize, "cell", png.CellSize, "cell size in pixels")
	exportCmd.Flags().IntVar(&png.Columns, "columns", png.Columns, "pieces per row")

	return exportCmd
}
