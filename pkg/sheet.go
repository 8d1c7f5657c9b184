package pkg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/qnkhuat/polyterm/pkg/mino"
)

// ErrNoPieces is returned when there is nothing to write.
var ErrNoPieces = errors.New("export: no pieces")

const (
	sheetBlock = "██"
	sheetEmpty = "  "
	sheetGap   = "  "
)

// SheetColumns is how many pieces of order fit side by side in width
// terminal columns. It is at least 1.
func SheetColumns(width, order int) int {
	tile := 2*order + len(sheetGap)
	if width < tile || tile == 0 {
		return 1
	}

	return width / tile
}

// WriteSheet prints pieces in rows of columns, each under a "#i Name"
// caption. Colors follow fatih/color's NoColor detection unless plain is set.
func WriteSheet(w io.Writer, pieces []mino.Piece, columns int, plain bool) error {
	if len(pieces) == 0 {
		return ErrNoPieces
	}
	if columns < 1 {
		columns = 1
	}

	block := color.New(color.FgGreen)
	pivot := color.New(color.FgHiGreen, color.Bold)
	caption := color.New(color.FgYellow)
	if plain {
		block.DisableColor()
		pivot.DisableColor()
		caption.DisableColor()
	}

	bw := bufio.NewWriter(w)
	for start := 0; start < len(pieces); start += columns {
		end := start + columns
		if end > len(pieces) {
			end = len(pieces)
		}

		writeSheetRow(bw, pieces[start:end], start, block, pivot, caption)
		if end < len(pieces) {
			bw.WriteString("\n")
		}
	}

	return bw.Flush()
}

func writeSheetRow(w *bufio.Writer, row []mino.Piece, offset int, block, pivot, caption *color.Color) {
	tiles := make([]mino.Piece, len(row))
	widths := make([]int, len(row))
	height := 0
	for i, p := range row {
		tiles[i] = p.Normalize()

		pw, ph := tiles[i].Size()
		label := pieceLabel(offset+i, p)
		widths[i] = 2 * pw
		if len(label) > widths[i] {
			widths[i] = len(label)
		}
		if ph > height {
			height = ph
		}
	}

	var line strings.Builder
	for i, p := range row {
		label := pieceLabel(offset+i, p)
		line.WriteString(caption.Sprint(label))
		line.WriteString(strings.Repeat(" ", widths[i]-len(label)))
		line.WriteString(sheetGap)
	}
	w.WriteString(strings.TrimRight(line.String(), " "))
	w.WriteString("\n")

	for y := 0; y < height; y++ {
		line.Reset()
		for i, t := range tiles {
			pw, _ := t.Size()
			var center mino.Cell
			hasPivot := t.Pivot >= 0 && t.Pivot < t.Len()
			if hasPivot {
				center = t.Cells[t.Pivot]
			}

			for x := 0; x < pw; x++ {
				c := mino.Cell{X: x, Y: y}
				switch {
				case !t.HasCell(c):
					line.WriteString(sheetEmpty)
				case hasPivot && c == center:
					line.WriteString(pivot.Sprint(sheetBlock))
				default:
					line.WriteString(block.Sprint(sheetBlock))
				}
			}
			line.WriteString(strings.Repeat(" ", widths[i]-2*pw))
			line.WriteString(sheetGap)
		}
		w.WriteString(strings.TrimRight(line.String(), " "))
		w.WriteString("\n")
	}
}

func pieceLabel(i int, p mino.Piece) string {
	if name := mino.Name(p); name != "" {
		return fmt.Sprintf("#%d %s", i+1, name)
	}
	return fmt.Sprintf("#%d", i+1)
}
