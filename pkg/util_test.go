package pkg

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLog(t *testing.T) {
	prefix, flags, out := log.Prefix(), log.Flags(), log.Writer()
	t.Cleanup(func() {
		log.SetPrefix(prefix)
		log.SetFlags(flags)
		log.SetOutput(out)
	})

	path := filepath.Join(t.TempDir(), "log")
	require.NoError(t, InitLog(path, "TEST: "))
	log.Println("first")

	require.NoError(t, InitLog(path, "TEST: "))
	log.Println("second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TEST: ")
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestInitLog_Errors(t *testing.T) {
	out := log.Writer()
	t.Cleanup(func() { log.SetOutput(out) })

	assert.NoError(t, InitLog("", ""))
	assert.Error(t, InitLog(filepath.Join(t.TempDir(), "missing", "log"), ""))
}
