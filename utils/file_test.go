package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveToTempFile(t *testing.T) {
	dir := t.TempDir()

	path, cleanup, err := SaveToTempFile(strings.NewReader("payload bytes"), dir, "ingest-*.pdf")
	require.NoError(t, err)
	require.NotNil(t, cleanup)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload bytes", string(content))

	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "cleanup must remove the file")
}

func TestSaveToTempFile_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "tmp")

	path, cleanup, err := SaveToTempFile(strings.NewReader("x"), dir, "ingest-*.pdf")
	require.NoError(t, err)
	defer cleanup()

	assert.True(t, strings.HasPrefix(path, dir))
}
