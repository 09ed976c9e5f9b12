package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBytesToString(t *testing.T) {
	want := "test"
	got := BytesToString([]byte(want))
	assert.Equal(t, want, got)
}

func TestPathExists(t *testing.T) {
	exists, err := PathExists("/invalid/path/some-dir", true)
	assert.NoError(t, err)
	assert.False(t, exists)
	exists, err = PathExists("/invalid/path/some-file", false)
	assert.NoError(t, err)
	assert.False(t, exists)

	dir := t.TempDir()
	exists, err = PathExists(dir, true)
	require.NoError(t, err)
	assert.True(t, exists)
	// a dir is not a file
	exists, err = PathExists(dir, false)
	require.NoError(t, err)
	assert.False(t, exists)

	file := filepath.Join(dir, "dashboard_data.json")
	require.NoError(t, os.WriteFile(file, []byte("[]"), 0o644))
	exists, err = PathExists(file, false)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs", "nested")
	require.NoError(t, EnsureDir(dir))
	exists, err := PathExists(dir, true)
	require.NoError(t, err)
	assert.True(t, exists)
	// second call is a no-op
	require.NoError(t, EnsureDir(dir))
}

func TestIsHTTPURL(t *testing.T) {
	assert.True(t, IsHTTPURL("http://localhost:8080/dashboard_data.json"))
	assert.True(t, IsHTTPURL("HTTPS://example.org/data.json"))
	assert.False(t, IsHTTPURL("./data/dashboard_data.json"))
	assert.False(t, IsHTTPURL("ftp://example.org/data.json"))
}
