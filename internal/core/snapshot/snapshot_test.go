package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog_export.json")

	data := `{
		"posts": [
			{"code": "abc123", "like_count": 42, "comment_count": 7},
			{"code": "def456", "like_count": 0, "comment_count": 0}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	snap, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, snap.Len())
	assert.Equal(t, 42, snap.LikeCount("abc123"))
	assert.Equal(t, 7, snap.CommentCount("abc123"))
	assert.Equal(t, 0, snap.LikeCount("def456"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestUnknownPostYieldsZero(t *testing.T) {
	snap := New(map[string]Counts{"known": {LikeCount: 5, CommentCount: 2}})

	assert.Equal(t, 0, snap.LikeCount("unknown"))
	assert.Equal(t, 0, snap.CommentCount("unknown"))
	assert.Equal(t, 5, snap.LikeCount("known"))
}

func TestEmpty(t *testing.T) {
	snap := Empty()

	assert.Equal(t, 0, snap.Len())
	assert.Equal(t, 0, snap.LikeCount("anything"))
}
