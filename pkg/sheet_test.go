package pkg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/polyterm/pkg/mino"
)

func enumerate(t *testing.T, order int) []mino.Piece {
	t.Helper()

	pieces, _, err := mino.Enumerate(order, false)
	require.NoError(t, err)

	return pieces
}

func TestWriteSheet_Domino(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSheet(&buf, enumerate(t, 2), 4, true))

	assert.Equal(t, "#1 Domino\n████\n", buf.String())
}

func TestWriteSheet_Trominoes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSheet(&buf, enumerate(t, 3), 2, true))

	want := "" +
		"#1 I    #2 L\n" +
		"██████  ████\n" +
		"        ██\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteSheet_OnePerRow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSheet(&buf, enumerate(t, 3), 0, true))

	want := "" +
		"#1 I\n" +
		"██████\n" +
		"\n" +
		"#2 L\n" +
		"████\n" +
		"██\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteSheet_Empty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteSheet(&buf, nil, 1, true), ErrNoPieces)
	assert.Zero(t, buf.Len())
}

func TestSheetColumns(t *testing.T) {
	assert.Equal(t, 1, SheetColumns(0, 4))
	assert.Equal(t, 1, SheetColumns(9, 4))
	assert.Equal(t, 8, SheetColumns(80, 4))
	assert.Equal(t, 6, SheetColumns(80, 5))
}
