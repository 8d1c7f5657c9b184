package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ErrThemeNotFound is returned by ImportThemes when no theme has the
// requested name.
var ErrThemeNotFound = errors.New("theme: no theme found")

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name       string      `json:"name"`
	Block      tcell.Color `json:"block"`
	Pivot      tcell.Color `json:"pivot"`
	Background tcell.Color `json:"background"`
	Border     tcell.Color `json:"border"`
	Title      tcell.Color `json:"title"`
	Status     tcell.Color `json:"status"`
	PieceName  tcell.Color `json:"pieceName"`
	Help       tcell.Color `json:"help"`
	Msg        tcell.Color `json:"msg"`
}

// ThemeHex is the JSON form of a Theme, with colors written as hex strings
type ThemeHex struct {
	Name       string `json:"name"`
	Block      string `json:"block"`
	Pivot      string `json:"pivot"`
	Background string `json:"background"`
	Border     string `json:"border"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	PieceName  string `json:"pieceName"`
	Help       string `json:"help"`
	Msg        string `json:"msg"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Block.Hex()),
		fmtHex(t.Pivot.Hex()),
		fmtHex(t.Background.Hex()),
		fmtHex(t.Border.Hex()),
		fmtHex(t.Title.Hex()),
		fmtHex(t.Status.Hex()),
		fmtHex(t.PieceName.Hex()),
		fmtHex(t.Help.Hex()),
		fmtHex(t.Msg.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.Block),
		tcell.GetColor(t.Pivot),
		tcell.GetColor(t.Background),
		tcell.GetColor(t.Border),
		tcell.GetColor(t.Title),
		tcell.GetColor(t.Status),
		tcell.GetColor(t.PieceName),
		tcell.GetColor(t.Help),
		tcell.GetColor(t.Msg),
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument. The built-in themes
// are searched after the provided ones.
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, fmt.Errorf("%w: %q", ErrThemeNotFound, want)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.Color34,      // Block
	tcell.Color40,      // Pivot
	tcell.ColorDefault, // Background
	tcell.Color247,     // Border
	tcell.Color252,     // Title
	tcell.Color247,     // Status
	tcell.Color226,     // PieceName
	tcell.Color240,     // Help
	tcell.Color160,     // Msg
}

// ThemeNeon draws pieces in bright magenta on black
var ThemeNeon = Theme{
	"neon",           // Name
	tcell.Color201,   // Block
	tcell.Color51,    // Pivot
	tcell.ColorBlack, // Background
	tcell.Color93,    // Border
	tcell.Color51,    // Title
	tcell.Color250,   // Status
	tcell.Color226,   // PieceName
	tcell.Color244,   // Help
	tcell.Color196,   // Msg
}

// Themes lists the built-in themes
var Themes = []Theme{ThemeBasic, ThemeNeon}
