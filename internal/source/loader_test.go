package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInlineValue(t *testing.T) {
	text, err := Load(Input{Name: "post", Value: "  hello world \n"})
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestLoadFileTakesPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "post.txt")
	require.NoError(t, os.WriteFile(path, []byte("from file\n"), 0o644))

	text, err := Load(Input{Name: "post", Value: "inline", File: path})
	require.NoError(t, err)
	assert.Equal(t, "from file", text)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(Input{Name: "post", File: filepath.Join(t.TempDir(), "nope.txt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading post from file")
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "post.txt")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o644))

	_, err := Load(Input{Name: "post", File: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is empty")
}

func TestLoadNothingConfigured(t *testing.T) {
	_, err := Load(Input{Name: "post"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "post is not configured")
}
