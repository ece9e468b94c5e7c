package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/danieljhkim/mdxassets/internal/planner"
)

func TestOrganize_MovesAndRewrites(t *testing.T) {
	p := newTestProject(t)
	p.write("public/images/_inbox/a.png", "a")
	p.write("public/images/_inbox/b.png", "b")
	p.write(contentDir+"/sns/reset.mdx", `![](/images/_inbox/a.png)
<ImageFigure src="/images/_inbox/b.png" alt="" />
See /images/_inbox/a.png again.
`)

	result, err := p.engine().Organize(context.Background(), &OrganizeRequest{Write: true})
	if err != nil {
		t.Fatalf("Organize failed: %v", err)
	}
	if result.Moved != 2 {
		t.Errorf("Moved = %d, want 2", result.Moved)
	}

	for _, name := range []string{"a.png", "b.png"} {
		if !p.exists("public/images/activities/sns/reset/" + name) {
			t.Errorf("%s was not moved", name)
		}
		if p.exists("public/images/_inbox/" + name) {
			t.Errorf("%s still in the inbox", name)
		}
	}

	want := `![](/images/activities/sns/reset/a.png)
<ImageFigure src="/images/activities/sns/reset/b.png" alt="" />
See /images/activities/sns/reset/a.png again.
`
	if got := p.read(contentDir + "/sns/reset.mdx"); got != want {
		t.Errorf("document =\n%s\nwant\n%s", got, want)
	}
}

func TestOrganize_NoImportInserted(t *testing.T) {
	p := newTestProject(t)
	p.write("public/images/_inbox/a.png", "a")
	p.write(contentDir+"/sns/reset.mdx", "![](/images/_inbox/a.png)\n")

	if _, err := p.engine().Organize(context.Background(), &OrganizeRequest{Write: true}); err != nil {
		t.Fatalf("Organize failed: %v", err)
	}
	if doc := p.read(contentDir + "/sns/reset.mdx"); strings.Contains(doc, "import ") {
		t.Errorf("organize must not insert imports:\n%s", doc)
	}
}

func TestOrganize_PrefixedPathsDoNotCollide(t *testing.T) {
	p := newTestProject(t)
	p.write("public/images/_inbox/a.png", "a")
	p.write("public/images/_inbox/a.png.bak.png", "b")
	p.write(contentDir+"/sns/reset.mdx", "![](/images/_inbox/a.png)\n![](/images/_inbox/a.png.bak.png)\n")

	if _, err := p.engine().Organize(context.Background(), &OrganizeRequest{Write: true}); err != nil {
		t.Fatalf("Organize failed: %v", err)
	}

	want := "![](/images/activities/sns/reset/a.png)\n![](/images/activities/sns/reset/a.png.bak.png)\n"
	if got := p.read(contentDir + "/sns/reset.mdx"); got != want {
		t.Errorf("document =\n%s\nwant\n%s", got, want)
	}
}

func TestOrganize_MissingExtensionOfPlannedPathKept(t *testing.T) {
	p := newTestProject(t)
	p.write("public/images/_inbox/a.png", "a")
	p.write(contentDir+"/sns/reset.mdx", "![](/images/_inbox/a.png)\n![](/images/_inbox/a.png.old.png)\n")

	result, err := p.engine().Organize(context.Background(), &OrganizeRequest{Write: true})
	if err != nil {
		t.Fatalf("Organize failed: %v", err)
	}
	if len(result.Plan.Missing) != 1 || result.Plan.Missing[0].Reference != "/images/_inbox/a.png.old.png" {
		t.Errorf("unexpected missing: %+v", result.Plan.Missing)
	}

	want := "![](/images/activities/sns/reset/a.png)\n![](/images/_inbox/a.png.old.png)\n"
	if got := p.read(contentDir + "/sns/reset.mdx"); got != want {
		t.Errorf("document =\n%s\nwant\n%s", got, want)
	}
}

func TestSubstitute_InboxPathBoundaries(t *testing.T) {
	moves := []planner.MovePlan{{Match: "/images/_inbox/a.png", Replacement: "/images/activities/sns/reset/a.png"}}

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "end of text", text: "/images/_inbox/a.png", want: "/images/activities/sns/reset/a.png"},
		{name: "markdown", text: "![](/images/_inbox/a.png)", want: "![](/images/activities/sns/reset/a.png)"},
		{name: "attribute", text: `src="/images/_inbox/a.png"`, want: `src="/images/activities/sns/reset/a.png"`},
		{name: "single quoted", text: "'/images/_inbox/a.png'", want: "'/images/activities/sns/reset/a.png'"},
		{name: "bracket", text: "[/images/_inbox/a.png]", want: "[/images/activities/sns/reset/a.png]"},
		{name: "whitespace", text: "/images/_inbox/a.png\tx", want: "/images/activities/sns/reset/a.png\tx"},
		{name: "longer path", text: "/images/_inbox/a.png.old.png", want: "/images/_inbox/a.png.old.png"},
		{name: "mixed", text: "/images/_inbox/a.pngx /images/_inbox/a.png", want: "/images/_inbox/a.pngx /images/activities/sns/reset/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := substitute(tt.text, moves, planner.ModeInbox); got != tt.want {
				t.Errorf("substitute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOrganize_MissingReported(t *testing.T) {
	p := newTestProject(t)
	p.write("public/images/_inbox/a.png", "a")
	p.write(contentDir+"/sns/reset.mdx", "![](/images/_inbox/a.png)\n![](/images/_inbox/foo.png)\n")

	result, err := p.engine().Organize(context.Background(), &OrganizeRequest{Write: true})
	if err != nil {
		t.Fatalf("non-strict Organize should not fail: %v", err)
	}
	if len(result.Plan.Missing) != 1 || result.Plan.Missing[0].Reference != "/images/_inbox/foo.png" {
		t.Errorf("unexpected missing: %+v", result.Plan.Missing)
	}

	doc := p.read(contentDir + "/sns/reset.mdx")
	if !strings.Contains(doc, "/images/_inbox/foo.png") {
		t.Error("missing reference should be left untouched")
	}
	if !strings.Contains(doc, "/images/activities/sns/reset/a.png") {
		t.Error("resolvable reference should still be rewritten")
	}
}

func TestOrganize_StrictMissingWritesNothing(t *testing.T) {
	p := newTestProject(t)
	p.write("public/images/_inbox/a.png", "a")
	p.write(contentDir+"/docker/intro.mdx", "![](/images/_inbox/a.png)\n")
	p.write(contentDir+"/sns/reset.mdx", "![](/images/_inbox/foo.png)\n")
	before := p.snapshot()

	result, err := p.engine().Organize(context.Background(), &OrganizeRequest{Write: true, Strict: true})
	if !errors.Is(err, ErrMissingReferences) {
		t.Fatalf("expected ErrMissingReferences, got %v", err)
	}
	if result == nil || len(result.Plan.Missing) != 1 {
		t.Fatalf("strict failure should still report the plan: %+v", result)
	}
	if result.Moved != 0 {
		t.Errorf("Moved = %d, want 0", result.Moved)
	}

	assertSnapshotEqual(t, before, p.snapshot())
}

func TestOrganize_Idempotent(t *testing.T) {
	p := newTestProject(t)
	p.write("public/images/_inbox/a.png", "a")
	p.write(contentDir+"/sns/reset.mdx", "![](/images/_inbox/a.png)\n")

	eng := p.engine()
	if _, err := eng.Organize(context.Background(), &OrganizeRequest{Write: true}); err != nil {
		t.Fatalf("first Organize failed: %v", err)
	}

	result, err := eng.Organize(context.Background(), &OrganizeRequest{Write: true, Strict: true})
	if err != nil {
		t.Fatalf("second Organize failed: %v", err)
	}
	if len(result.Plan.Moves) != 0 || len(result.Plan.Missing) != 0 {
		t.Errorf("second run found work: %+v", result.Plan)
	}
}
