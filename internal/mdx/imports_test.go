package mdx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const figureImport = `import ImageFigure from "@/components/ImageFigure.astro";`

func TestImportLine(t *testing.T) {
	assert.Equal(t, figureImport, ImportLine("ImageFigure", "@/components/ImageFigure.astro"))
}

func TestHasImport(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "exact match", text: "---\nt: x\n---\n" + figureImport + "\n", want: true},
		{name: "single quotes", text: "import ImageFigure from '@/components/ImageFigure.astro';\n", want: true},
		{name: "indented", text: "  " + figureImport + "\n", want: true},
		{name: "missing", text: "# Title\n", want: false},
		{name: "other name", text: `import Figure from "@/components/ImageFigure.astro";`, want: false},
		// Same name from another path is not the same declaration
		{name: "other path", text: `import ImageFigure from "../components/ImageFigure.astro";`, want: false},
		{name: "no semicolon", text: `import ImageFigure from "@/components/ImageFigure.astro"`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasImport(tt.text, "ImageFigure", "@/components/ImageFigure.astro"))
		})
	}
}

func TestInsertImport(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "after front-matter",
			text: "---\ntitle: Reset\n---\n# Reset\n",
			want: "---\ntitle: Reset\n---\n" + figureImport + "\n\n# Reset\n",
		},
		{
			name: "after front-matter followed by blank line",
			text: "---\ntitle: Reset\n---\n\n# Reset\n",
			want: "---\ntitle: Reset\n---\n" + figureImport + "\n\n# Reset\n",
		},
		{
			name: "top of document",
			text: "# Reset\n",
			want: figureImport + "\n\n# Reset\n",
		},
		{
			name: "front-matter closing at end of text",
			text: "---\ntitle: Reset\n---",
			want: "---\ntitle: Reset\n---\n" + figureImport + "\n",
		},
		{
			name: "front-matter closing with CRLF",
			text: "---\r\ntitle: Reset\r\n---\r\n# Reset\n",
			want: "---\r\ntitle: Reset\r\n---\r\n" + figureImport + "\n\n# Reset\n",
		},
		{
			name: "empty document",
			text: "",
			want: figureImport + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InsertImport(tt.text, figureImport)
			assert.Equal(t, tt.want, got)
			assert.True(t, HasImport(got, "ImageFigure", "@/components/ImageFigure.astro"))
			assert.Equal(t, 1, strings.Count(got, figureImport))
		})
	}
}
