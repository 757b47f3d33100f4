package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoshihikoAbe/ozip2zip/keyring"
	"github.com/YoshihikoAbe/ozip2zip/ozip"
)

func TestWrite(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test.ozip")
	require.NoError(t, write(name))

	key, err := ozip.ConvertFile(name, name+".zip", keyring.Default)
	require.NoError(t, err)
	assert.Equal(t, 5, keyring.Default.Index(key))

	b, err := os.ReadFile(name + ".zip")
	require.NoError(t, err)
	require.Len(t, b, 116)
	assert.Equal(t, []byte("PK\x03\x04"), b[:4])
	assert.Equal(t, make([]byte, 12), b[4:16])
	assert.Equal(t, byte(99), b[115])
}

func TestWriteUnwritable(t *testing.T) {
	err := write(filepath.Join(t.TempDir(), "missing", "test.ozip"))
	assert.Error(t, err)
}
