package batch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upnmigrate/batch"
)

func writeBatch(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_KeysInInputOrder(t *testing.T) {
	path := writeBatch(t, "AccountKey,Department\njdoe,Finance\nasmith,HR\nbwayne,Legal\n")

	keys, err := batch.Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"jdoe", "asmith", "bwayne"}, keys)
}

func TestLoad_CustomKeyColumn(t *testing.T) {
	path := writeBatch(t, "Name,sAMAccountName\nJohn Doe,jdoe\nAnna Smith,asmith\n")

	keys, err := batch.Load(path, "samaccountname")
	require.NoError(t, err)
	assert.Equal(t, []string{"jdoe", "asmith"}, keys)
}

func TestLoad_BlankKeysSkipped(t *testing.T) {
	path := writeBatch(t, "AccountKey\njdoe\n\n  \nasmith\n")

	keys, err := batch.Load(path, "AccountKey")
	require.NoError(t, err)
	assert.Equal(t, []string{"jdoe", "asmith"}, keys)
}

func TestLoad_MissingKeyColumn(t *testing.T) {
	path := writeBatch(t, "Name,Department\nJohn Doe,Finance\n")

	_, err := batch.Load(path, "AccountKey")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AccountKey")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := batch.Load(filepath.Join(t.TempDir(), "nope.csv"), "")
	require.Error(t, err)
}
