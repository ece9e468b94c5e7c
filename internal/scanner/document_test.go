package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/mdxassets/internal/fsops"
)

func TestDiscover(t *testing.T) {
	fsys := fstest.MapFS{
		"sns/reset.mdx":          {Data: []byte("reset")},
		"sns/index.mdx":          {Data: []byte("index")},
		"docker/index.mdx":       {Data: []byte("docker")},
		"docker/labs/part1.mdx":  {Data: []byte("part1")},
		"docker/notes.md":        {Data: []byte("not mdx")},
		"top-level.mdx":          {Data: []byte("outside any activity")},
		"weird.mdx/index.mdx":    {Data: []byte("dir named like a doc")},
		"sns/20260207230513.png": {Data: []byte("png")},
	}

	docs, err := Discover(fsys, "**/*.mdx")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"docker/index.mdx",
		"docker/labs/part1.mdx",
		"sns/index.mdx",
		"sns/reset.mdx",
		"weird.mdx/index.mdx",
	}, docs)
}

func TestDiscover_SegmentOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"sns/a-b/reset.mdx": {Data: []byte("a-b")},
		"sns/a/reset.mdx":   {Data: []byte("a")},
		"sns/a.b/reset.mdx": {Data: []byte("a.b")},
	}

	docs, err := Discover(fsys, "**/*.mdx")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"sns/a/reset.mdx",
		"sns/a-b/reset.mdx",
		"sns/a.b/reset.mdx",
	}, docs)
}

func TestComparePaths(t *testing.T) {
	assert.Negative(t, ComparePaths("sns/a/reset.mdx", "sns/a-b/reset.mdx"))
	assert.Positive(t, ComparePaths("sns/b.mdx", "sns/a/z.mdx"))
	assert.Zero(t, ComparePaths("sns/reset.mdx", "sns/reset.mdx"))
}

func TestDiscover_Empty(t *testing.T) {
	docs, err := Discover(fstest.MapFS{}, "**/*.mdx")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sns"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sns", "reset.mdx"), []byte("# Reset\n"), 0644))

	doc, err := Load(fsops.NewRealFS(), root, "sns/reset.mdx")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "sns", "reset.mdx"), doc.Path)
	assert.Equal(t, "sns/reset.mdx", doc.RelPath)
	assert.Equal(t, "sns", doc.FolderSlug)
	assert.Equal(t, "reset", doc.Stem)
	assert.Equal(t, "# Reset\n", doc.Text)
	assert.Equal(t, filepath.Join(root, "sns"), doc.Dir())
}

func TestLoad_Errors(t *testing.T) {
	root := t.TempDir()
	fs := fsops.NewRealFS()

	_, err := Load(fs, root, "top.mdx")
	assert.Error(t, err, "documents must live in an activity folder")

	_, err = Load(fs, root, "../escape/x.mdx")
	assert.Error(t, err)

	_, err = Load(fs, root, "sns/missing.mdx")
	assert.Error(t, err)
}
