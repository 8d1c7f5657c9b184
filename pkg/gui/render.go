package gui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/polyterm/pkg/mino"
)

const (
	blockRune = '█'
	emptyRune = ' '
)

// colorTag returns the tview color tag for c.
func colorTag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "[-]"
	}
	return fmt.Sprintf("[#%06x]", c.Hex())
}

// RenderPiece draws p as tview tagged text. Every cell is 2*scale columns
// wide and scale rows tall; the pivot cell uses the theme's pivot color.
func RenderPiece(p mino.Piece, t Theme, scale int) string {
	if p.Len() == 0 {
		return ""
	}
	if scale < 1 {
		scale = 1
	}

	n := p.Normalize()
	w, h := n.Size()

	var pivot mino.Cell
	hasPivot := p.Pivot >= 0 && p.Pivot < n.Len()
	if hasPivot {
		pivot = n.Cells[p.Pivot]
	}

	block := strings.Repeat(string(blockRune), 2*scale)
	empty := strings.Repeat(string(emptyRune), 2*scale)

	var b strings.Builder
	for y := 0; y < h; y++ {
		var line strings.Builder
		for x := 0; x < w; x++ {
			c := mino.Cell{X: x, Y: y}
			switch {
			case !n.HasCell(c):
				line.WriteString(empty)
			case hasPivot && c == pivot:
				line.WriteString(colorTag(t.Pivot))
				line.WriteString(block)
			default:
				line.WriteString(colorTag(t.Block))
				line.WriteString(block)
			}
		}
		line.WriteString("[-]")

		for i := 0; i < scale; i++ {
			b.WriteString(line.String())
			b.WriteRune('\n')
		}
	}

	return b.String()
}

// StatusText is the line shown under the piece.
func StatusText(index, count, order int, name string, clock string, t Theme) string {
	var b strings.Builder

	b.WriteString(colorTag(t.Status))
	if count == 0 {
		fmt.Fprintf(&b, "No pieces. Order: %d", order)
	} else {
		fmt.Fprintf(&b, "Piece %d out of %d. Order: %d", index+1, count, order)
	}

	if name != "" {
		b.WriteString(" ")
		b.WriteString(colorTag(t.PieceName))
		b.WriteString(name)
		b.WriteString(colorTag(t.Status))
	}

	if clock != "" {
		fmt.Fprintf(&b, " (%s)", clock)
	}
	b.WriteString("[-]")

	return b.String()
}
