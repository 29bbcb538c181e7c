package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFileImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	src := ledgerWith("a.com", "b.com")

	n, err := ExportFile(src, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a.com,t0\nb.com,t1\n", string(data))

	dst := NewHistoryLedger()
	res, err := ImportFile(dst, path)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, src.Entries(), dst.Entries())
}

func TestImportFileMissing(t *testing.T) {
	l := NewHistoryLedger()
	_, err := ImportFile(l, filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
	assert.Equal(t, 0, l.Len())
}

func TestExportFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "history.txt")
	_, err := ExportFile(ledgerWith("a.com"), path)
	require.Error(t, err)
}
