package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/polyterm/pkg"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.json")}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestList_Plain(t *testing.T) {
	out, err := execute(t, "list", "--order", "3", "--plain", "--columns", "2")
	require.NoError(t, err)

	want := "" +
		"#1 I    #2 L\n" +
		"██████  ████\n" +
		"        ██\n"
	assert.Equal(t, want, out)
}

func TestList_JSON(t *testing.T) {
	for _, tt := range []struct {
		args  []string
		count int
	}{
		{[]string{"list", "--json"}, 7},
		{[]string{"list", "--json", "--reflect"}, 5},
		{[]string{"list", "--json", "-n", "5"}, 18},
	} {
		out, err := execute(t, tt.args...)
		require.NoError(t, err, "%v", tt.args)

		m, err := pkg.Decode([]byte(out))
		require.NoError(t, err, "%v", tt.args)

		set, ok := m.(pkg.MessagePieceSet)
		require.True(t, ok)
		assert.Equal(t, tt.count, set.Count, "%v", tt.args)
	}
}

func TestList_InvalidOrder(t *testing.T) {
	_, err := execute(t, "list", "--order", "0")
	assert.Error(t, err)

	_, err = execute(t, "list", "--order", "8")
	assert.EqualError(t, err, "config: order must be between 1 and 7, got 8")

	_, err = execute(t, "list", "--order", "4", "--max-order", "3")
	assert.EqualError(t, err, "config: order must be between 1 and 3, got 4")

	_, err = execute(t, "list", "--order", "2", "--max-order", "2", "--json")
	assert.NoError(t, err)
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetrominoes.png")

	out, err := execute(t, "export", "-o", path, "--cell", "8", "--columns", "4")
	require.NoError(t, err)
	assert.Equal(t, "Exported 7 pieces to "+path+"\n", out)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)

	opts := pkg.PNGOptions{CellSize: 8, Columns: 4}
	w, h := pkg.PNGSize(7, 4, opts)
	assert.Equal(t, w, cfg.Width)
	assert.Equal(t, h, cfg.Height)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"order": 2}`), 0600))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "list", "--plain"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "#1 Domino\n████\n", out.String())
}
