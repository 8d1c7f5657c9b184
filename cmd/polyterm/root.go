package main

import (
	"errors"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/qnkhuat/polyterm/pkg"
	"github.com/qnkhuat/polyterm/pkg/gui"
	"github.com/qnkhuat/polyterm/pkg/mino"
)

// flags shared by every command; they override the config file when set.
type flags struct {
	configPath string
	logPath    string
	order      int
	maxOrder   int
	reflect    bool
	theme      string
	scale      int
	title      string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "polyterm",
		Short: "Browse every polyomino of a given order",
		Long: `Enumerate the distinct polyominoes of an order and step through them
in the terminal.

Examples:
  polyterm --order 5
  polyterm list --order 4 --reflect
  polyterm export --order 6 -o hexominoes.png`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(cmd, f)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", pkg.DefaultConfigPath(), "path to config file")
	pf.StringVar(&f.logPath, "log", "", "path to log file")
	pf.IntVarP(&f.order, "order", "n", pkg.DefaultOrder, "number of cells per piece")
	pf.IntVar(&f.maxOrder, "max-order", gui.DefaultMaxOrder, "highest order the browser will generate")
	pf.BoolVar(&f.reflect, "reflect", false, "treat mirror images as the same piece")
	pf.StringVar(&f.theme, "theme", gui.ThemeBasic.Name, "color theme")
	pf.IntVar(&f.scale, "scale", 1, "UI scale")
	pf.StringVar(&f.title, "title", "polyterm", "browser title")

	rootCmd.AddCommand(newListCmd(f), newExportCmd(f))

	return rootCmd
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command, f *flags) (pkg.Config, error) {
	config, err := pkg.LoadConfig(f.configPath)
	if err != nil {
		return config, err
	}

	set := cmd.Flags()
	if set.Changed("log") {
		config.LogPath = f.logPath
	}
	if set.Changed("order") {
		config.Order = f.order
	}
	if set.Changed("max-order") {
		config.MaxOrder = f.maxOrder
	}
	if set.Changed("reflect") {
		config.Reflect = f.reflect
	}
	if set.Changed("theme") {
		config.Theme = f.theme
	}
	if set.Changed("scale") {
		config.Scale = f.scale
	}

	return config, config.Validate()
}

func setOptions(config pkg.Config) []mino.Option {
	opts := []mino.Option{mino.WithLogger(log.Default())}
	if config.Reflect {
		opts = append(opts, mino.WithReflections())
	}

	return opts
}

func runBrowser(cmd *cobra.Command, f *flags) error {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !tty {
		return errors.New("failed to start polyterm: non-interactive terminals are not supported")
	}

	config, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	if err = pkg.InitLog(config.LogPath, "POLYTERM: "); err != nil {
		return err
	}

	theme, err := config.ResolveTheme()
	if err != nil {
		return err
	}

	log.Printf("Browser started at order %d", config.Order)

	b := gui.NewBrowser(mino.NewPieceSet(setOptions(config)...), gui.Options{
		Theme:    theme,
		MaxOrder: config.MaxOrder,
		Scale:    config.Scale,
		Title:    f.title,
		Export: func(order int, pieces []mino.Piece) (string, error) {
			path := config.ExportPath(order)
			return path, pkg.ExportPNG(path, order, pieces, pkg.DefaultPNGOptions())
		},
	})

	return b.Run(config.Order)
}
