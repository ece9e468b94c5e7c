package scanner

import (
	"iter"
	"path"
	"regexp"
	"sort"
	"strings"
)

// Reference is one image path occurrence inside a document.
type Reference struct {
	// Raw is the exact matched text
	Raw string

	// Path is the referenced path as written
	Path string

	// Alt is the trimmed alt text (Markdown images only)
	Alt string

	// Title is the trimmed title (Markdown images only)
	Title string

	// HasTitle is true when a non-empty title was given
	HasTitle bool

	// Offset is the byte offset of Raw in the document text
	Offset int
}

var markdownImageRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

// MarkdownImages yields the Markdown image references in text, in order.
func MarkdownImages(text string) iter.Seq[Reference] {
	return func(yield func(Reference) bool) {
		pos := 0
		for pos < len(text) {
			m := markdownImageRe.FindStringSubmatchIndex(text[pos:])
			if m == nil {
				return
			}
			p, title, hasTitle := ParseTarget(text[pos+m[4] : pos+m[5]])
			ref := Reference{
				Raw:      text[pos+m[0] : pos+m[1]],
				Path:     p,
				Alt:      strings.TrimSpace(text[pos+m[2] : pos+m[3]]),
				Title:    title,
				HasTitle: hasTitle,
				Offset:   pos + m[0],
			}
			if !yield(ref) {
				return
			}
			pos += m[1]
		}
	}
}

// ParseTarget splits the parenthesized part of a Markdown image into path
// and optional title. With a double quote present the text before it is the
// path and the text inside the first quote pair is the title; otherwise the
// first whitespace-separated token is the path.
func ParseTarget(inside string) (p, title string, hasTitle bool) {
	inside = strings.TrimSpace(inside)
	if strings.Contains(inside, `"`) {
		parts := strings.Split(inside, `"`)
		title = strings.TrimSpace(parts[1])
		return strings.TrimSpace(parts[0]), title, title != ""
	}
	fields := strings.Fields(inside)
	if len(fields) == 0 {
		return "", "", false
	}
	return fields[0], "", false
}

// IsPathTerminator reports whether c ends an inbox path: whitespace or one
// of " ' ) ].
func IsPathTerminator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '"', '\'', ')', ']':
		return true
	}
	return false
}

// InboxPaths yields each distinct path starting with prefix, sorted. A path
// runs until whitespace or one of " ' ) ].
func InboxPaths(text, prefix string) iter.Seq[Reference] {
	re := regexp.MustCompile(regexp.QuoteMeta(prefix) + `[^\s"')\]]+`)
	return func(yield func(Reference) bool) {
		first := make(map[string]int)
		for _, loc := range re.FindAllStringIndex(text, -1) {
			p := text[loc[0]:loc[1]]
			if _, ok := first[p]; !ok {
				first[p] = loc[0]
			}
		}

		paths := make([]string, 0, len(first))
		for p := range first {
			paths = append(paths, p)
		}
		sort.Strings(paths)

		for _, p := range paths {
			if !yield(Reference{Raw: p, Path: p, Offset: first[p]}) {
				return
			}
		}
	}
}

// Filter decides which Markdown image paths are migration candidates.
type Filter struct {
	// MigratedPrefixes are site-root paths that are already organized
	MigratedPrefixes []string

	// Extensions are the accepted lowercase extensions, with leading dot
	Extensions []string
}

// Check reports whether p is a relative local image path. When it is not,
// reason says why.
func (f Filter) Check(p string) (ok bool, reason string) {
	p = strings.TrimSpace(p)
	if p == "" {
		return false, "empty path"
	}

	lower := strings.ToLower(p)
	for _, scheme := range []string{"http://", "https://", "data:"} {
		if strings.HasPrefix(lower, scheme) {
			return false, "external URL"
		}
	}
	for _, prefix := range f.MigratedPrefixes {
		if strings.HasPrefix(p, prefix) {
			return false, "already migrated"
		}
	}
	if strings.HasPrefix(p, "/") {
		return false, "site-root path"
	}

	ext := strings.ToLower(path.Ext(p))
	for _, allowed := range f.Extensions {
		if ext == allowed {
			return true, ""
		}
	}
	return false, "not an image extension"
}
