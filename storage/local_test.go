package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSaveAndRemove(t *testing.T) {
	store, err := NewLocalStore(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	blob := []byte("fake jpeg data")
	require.NoError(t, store.Save("abc123.jpg", bytes.NewReader(blob)))

	data, err := os.ReadFile(filepath.Join(store.Root(), "abc123.jpg"))
	require.NoError(t, err)
	assert.Equal(t, blob, data)

	require.NoError(t, store.Remove("abc123.jpg"))
	_, err = os.Stat(filepath.Join(store.Root(), "abc123.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStoreCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalStore(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStorePartialWriteLeavesNoFile(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	reader := iotest.ErrReader(errors.New("connection dropped"))
	err = store.Save("broken.png", reader)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(store.Root(), "broken.png"))
	assert.True(t, os.IsNotExist(statErr), "a failed save must not keep a truncated file")
}

func TestLocalStoreRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	err = store.Save("../evil.jpg", bytes.NewReader([]byte("x")))
	assert.Error(t, err)

	err = store.Remove("../../etc/passwd")
	assert.Error(t, err)
}
