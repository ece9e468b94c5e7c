package scanner

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/danieljhkim/mdxassets/internal/fsops"
)

// Document is a content file under the content root.
type Document struct {
	// Path is the absolute filesystem path
	Path string

	// RelPath is the slash-separated path relative to the content root
	RelPath string

	// FolderSlug is the first segment of RelPath
	FolderSlug string

	// Stem is the file name without extension
	Stem string

	// Text is the raw document content at load time
	Text string
}

// Dir returns the directory containing the document.
func (d *Document) Dir() string {
	return filepath.Dir(d.Path)
}

// Discover returns the slash-separated paths of all documents in fsys that
// match pattern, sorted by path segments. Documents directly in the root
// (outside any activity folder) are not returned.
func Discover(fsys fs.FS, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to glob %q: %w", pattern, err)
	}

	docs := make([]string, 0, len(matches))
	for _, m := range matches {
		if !strings.Contains(m, "/") {
			continue
		}
		docs = append(docs, m)
	}
	slices.SortFunc(docs, ComparePaths)
	return docs, nil
}

// ComparePaths orders slash-separated paths segment by segment, so
// "sns/a/reset.mdx" sorts before "sns/a-b/reset.mdx".
func ComparePaths(a, b string) int {
	return slices.Compare(strings.Split(a, "/"), strings.Split(b, "/"))
}

// Load reads the document at relPath under contentRoot.
func Load(fsys fsops.FS, contentRoot, relPath string) (*Document, error) {
	if err := fsops.ValidateRelPath(relPath); err != nil {
		return nil, err
	}

	parts := strings.Split(relPath, "/")
	if len(parts) < 2 {
		return nil, fmt.Errorf("document %s is not inside an activity folder", relPath)
	}

	abs := filepath.Join(contentRoot, filepath.FromSlash(relPath))
	data, err := fsys.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", relPath, err)
	}

	base := path.Base(relPath)
	return &Document{
		Path:       abs,
		RelPath:    relPath,
		FolderSlug: parts[0],
		Stem:       strings.TrimSuffix(base, path.Ext(base)),
		Text:       string(data),
	}, nil
}
