package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.log")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0600))

	h, err := OpenAppend(path, 0600)
	require.NoError(t, err)
	_, err = h.WriteString("new\n")
	require.NoError(t, err)
	require.NoError(t, h.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old\nnew\n", string(b))
}

func TestHandle_CloseTwice(t *testing.T) {
	h, err := OpenAppend(filepath.Join(t.TempDir(), "live.log"), 0600)
	require.NoError(t, err)

	assert.NoError(t, h.Close())
	assert.NoError(t, h.Close())
}

func TestOpenAppend_MissingDir(t *testing.T) {
	_, err := OpenAppend(filepath.Join(t.TempDir(), "nope", "live.log"), 0600)
	assert.True(t, os.IsNotExist(err))
}
