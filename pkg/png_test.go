package pkg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgba(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestPNGSize(t *testing.T) {
	opts := DefaultPNGOptions()

	w, h := PNGSize(2, 3, opts)
	assert.Equal(t, 160, w)
	assert.Equal(t, 98, h)

	w, h = PNGSize(18, 5, opts)
	assert.Equal(t, 8*7*16, w)
	assert.Equal(t, 3*(7*16+18), h)
}

func TestRenderPNG(t *testing.T) {
	opts := DefaultPNGOptions()

	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, 3, enumerate(t, 3), opts))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	w, h := PNGSize(2, 3, opts)
	assert.Equal(t, image.Rect(0, 0, w, h), img.Bounds())

	// first tile: I tromino starting one cell in, under the caption
	assert.Equal(t, color.RGBA{0, 160, 0, 255}, rgba(img, 24, 42))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, rgba(img, 40, 42))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, rgba(img, 56, 42))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, rgba(img, 24, 58))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, rgba(img, 2, h-2))
}

func TestRenderPNG_NilColors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, 2, enumerate(t, 2), PNGOptions{CellSize: 4, Columns: 1}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 160, 0, 255}, rgba(img, 6, 24))
}

func TestRenderPNG_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, RenderPNG(&buf, 3, nil, DefaultPNGOptions()), ErrNoPieces)
	assert.Error(t, RenderPNG(&buf, 3, enumerate(t, 3), PNGOptions{}))
}

func TestExportPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "polyominoes-4.png")
	require.NoError(t, ExportPNG(path, 4, enumerate(t, 4), DefaultPNGOptions()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)

	w, h := PNGSize(7, 4, DefaultPNGOptions())
	assert.Equal(t, w, cfg.Width)
	assert.Equal(t, h, cfg.Height)
}
