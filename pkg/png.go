package pkg

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/qnkhuat/polyterm/pkg/mino"
)

// PNGOptions controls the image written by RenderPNG.
type PNGOptions struct {
	CellSize int
	Columns  int
	Block    color.Color
	Pivot    color.Color
	Caption  color.Color
}

func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		CellSize: 16,
		Columns:  8,
		Block:    color.RGBA{0, 255, 0, 255},
		Pivot:    color.RGBA{0, 160, 0, 255},
		Caption:  color.Black,
	}
}

const (
	pngCaption = 18.0
	pngPadding = 1
)

// PNGSize returns the image size RenderPNG produces for count pieces of
// order.
func PNGSize(count, order int, opts PNGOptions) (int, int) {
	cols := opts.Columns
	if cols > count {
		cols = count
	}
	if cols < 1 {
		cols = 1
	}
	rows := (count + cols - 1) / cols

	tile := (order + 2*pngPadding) * opts.CellSize

	return cols * tile, rows * (tile + int(pngCaption))
}

// RenderPNG draws every piece on a grid of captioned tiles and encodes it
// as PNG.
func RenderPNG(w io.Writer, order int, pieces []mino.Piece, opts PNGOptions) error {
	if len(pieces) == 0 {
		return ErrNoPieces
	}
	if opts.CellSize < 1 || opts.Columns < 1 {
		return fmt.Errorf("export: invalid png options %+v", opts)
	}

	def := DefaultPNGOptions()
	if opts.Block == nil {
		opts.Block = def.Block
	}
	if opts.Pivot == nil {
		opts.Pivot = def.Pivot
	}
	if opts.Caption == nil {
		opts.Caption = def.Caption
	}

	width, height := PNGSize(len(pieces), order, opts)
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	cell := float64(opts.CellSize)
	tile := float64(order+2*pngPadding) * cell
	cols := opts.Columns
	if cols > len(pieces) {
		cols = len(pieces)
	}

	for i, p := range pieces {
		x0 := float64(i%cols) * tile
		y0 := float64(i/cols) * (tile + pngCaption)

		dc.SetColor(opts.Caption)
		dc.DrawStringAnchored(pieceLabel(i, p), x0+tile/2, y0+pngCaption/2, 0.5, 0.5)

		drawPiecePNG(dc, p, x0+pngPadding*cell, y0+pngCaption+pngPadding*cell, cell, opts)
	}

	return dc.EncodePNG(w)
}

func drawPiecePNG(dc *gg.Context, p mino.Piece, x0, y0, cell float64, opts PNGOptions) {
	n := p.Normalize()

	for i, c := range n.Cells {
		x := x0 + float64(c.X)*cell
		y := y0 + float64(c.Y)*cell

		if i == n.Pivot {
			dc.SetColor(opts.Pivot)
		} else {
			dc.SetColor(opts.Block)
		}
		dc.DrawRectangle(x, y, cell, cell)
		dc.Fill()

		dc.SetLineWidth(1)
		dc.SetColor(color.Black)
		dc.DrawRectangle(x, y, cell, cell)
		dc.Stroke()
	}
}

// ExportPNG writes the sheet for pieces to path, creating its directory.
func ExportPNG(path string, order int, pieces []mino.Piece, opts PNGOptions) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err = RenderPNG(f, order, pieces, opts); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
