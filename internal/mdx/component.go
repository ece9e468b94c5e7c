package mdx

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Figure components the migrate command can emit.
const (
	ComponentFigure       = "ImageFigure"
	ComponentFigureViewer = "ImageFigureViewer"
)

// Figure carries the attributes of a rendered figure tag.
type Figure struct {
	Src        string
	Alt        string
	Caption    string
	HasCaption bool
}

// RenderTag renders `<Component src="…" alt="…" caption="…" />`.
// Attribute values are JSON string literals; caption is omitted unless set.
func RenderTag(component string, f Figure) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(component)
	b.WriteString(" src=")
	b.WriteString(jsonString(f.Src))
	b.WriteString(" alt=")
	b.WriteString(jsonString(f.Alt))
	if f.HasCaption {
		b.WriteString(" caption=")
		b.WriteString(jsonString(f.Caption))
	}
	b.WriteString(" />")
	return b.String()
}

// jsonString quotes s as a JSON string, leaving <, > and & and non-ASCII text
// as-is.
func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// Encoding a string cannot fail.
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
