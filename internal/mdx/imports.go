package mdx

import (
	"fmt"
	"regexp"
	"strings"
)

var importRe = regexp.MustCompile(`(?m)^\s*import\s+(\w+)\s+from\s+["']([^"']+)["']\s*;\s*$`)

// ImportLine renders a default-import declaration.
func ImportLine(name, from string) string {
	return fmt.Sprintf("import %s from %q;", name, from)
}

// HasImport reports whether text declares `import name from "from";`.
// Both the bound name and the source path must match exactly.
func HasImport(text, name, from string) bool {
	for _, m := range importRe.FindAllStringSubmatch(text, -1) {
		if m[1] == name && m[2] == from {
			return true
		}
	}
	return false
}

// InsertImport places line right after the front-matter block, or at the
// top when there is none, followed by a blank line.
func InsertImport(text, line string) string {
	if _, end, ok := FrontMatter(text); ok {
		head, rest := text[:end], text[end:]
		if !strings.HasSuffix(head, "\n") {
			head += "\n"
		}
		return head + line + "\n" + blankLineBefore(rest) + rest
	}
	return line + "\n" + blankLineBefore(text) + text
}

// blankLineBefore returns the newline needed so that rest is preceded by an
// empty line.
func blankLineBefore(rest string) string {
	if rest == "" || strings.HasPrefix(rest, "\n") || strings.HasPrefix(rest, "\r\n") {
		return ""
	}
	return "\n"
}
