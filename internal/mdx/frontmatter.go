package mdx

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	frontMatterRe = regexp.MustCompile(`(?s)\A---[ \t]*\r?\n(.*?)\r?\n---[ \t]*(?:\r?\n|\z)`)
	slugLineRe    = regexp.MustCompile(`(?m)^\s*slug\s*:\s*(.+?)\s*$`)
)

// FrontMatter returns the body of the leading --- block and the byte offset
// just past its closing delimiter line.
func FrontMatter(text string) (body string, end int, ok bool) {
	m := frontMatterRe.FindStringSubmatchIndex(text)
	if m == nil {
		return "", 0, false
	}
	return text[m[2]:m[3]], m[1], true
}

// FrontMatterSlug returns the explicit slug override declared in the
// document's front-matter, if any.
func FrontMatterSlug(text string) (string, bool) {
	body, _, ok := FrontMatter(text)
	if !ok {
		return "", false
	}

	var fields map[string]any
	if err := yaml.Unmarshal([]byte(body), &fields); err != nil {
		// MDX front-matter is not always strict YAML; fall back to the line.
		return slugFromLine(body)
	}

	v, ok := fields["slug"]
	if !ok || v == nil {
		return "", false
	}
	var slug string
	switch val := v.(type) {
	case string:
		slug = val
	case int, int64, float64, bool:
		slug = fmt.Sprint(val)
	default:
		return "", false
	}
	slug = strings.TrimSpace(slug)
	return slug, slug != ""
}

func slugFromLine(body string) (string, bool) {
	m := slugLineRe.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	val := strings.TrimSpace(m[1])
	if len(val) >= 2 {
		if (val[0] == '"' && val[len(val)-1] == '"') || (val[0] == '\'' && val[len(val)-1] == '\'') {
			val = strings.TrimSpace(val[1 : len(val)-1])
		}
	}
	return val, val != ""
}
