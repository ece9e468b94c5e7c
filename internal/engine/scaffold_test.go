package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danieljhkim/mdxassets/internal/scaffold"
)

func TestNewActivity_DefaultBlueprint(t *testing.T) {
	p := newTestProject(t)

	result, err := p.engine().NewActivity(context.Background(), &NewActivityRequest{
		Activity: scaffold.Activity{Title: "Sécurité réseau", Tags: scaffold.Tags{"net", "linux"}},
	})
	if err != nil {
		t.Fatalf("NewActivity failed: %v", err)
	}

	if result.Slug != "securite-reseau" {
		t.Errorf("Slug = %s", result.Slug)
	}
	if result.RelPath != contentDir+"/securite-reseau/index.mdx" {
		t.Errorf("RelPath = %s", result.RelPath)
	}
	if !p.exists(contentDir + "/securite-reseau/assets") {
		t.Error("assets folder not created")
	}

	doc := p.read(result.RelPath)
	for _, want := range []string{`title: "Sécurité réseau"`, `tags: ["net", "linux"]`, "status: draft", "lastUpdated: 2026-02-07", "order: 100"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestNewActivity_ProjectBlueprint(t *testing.T) {
	p := newTestProject(t)
	p.write("blueprints/activity.mdx", "# {TITLE} ({STATUS}) {DATE}\n")

	result, err := p.engine().NewActivity(context.Background(), &NewActivityRequest{
		Activity: scaffold.Activity{Slug: "docker", Title: "Docker", Status: "ready"},
	})
	if err != nil {
		t.Fatalf("NewActivity failed: %v", err)
	}
	if got := p.read(result.RelPath); got != "# Docker (ready) 2026-02-07\n" {
		t.Errorf("document = %q", got)
	}
}

func TestNewActivity_FromFile(t *testing.T) {
	p := newTestProject(t)
	file := p.write("activity.yaml", "slug: docker\ntitle: Docker\ntags: \"a, b\"\norder: 2\n")

	result, err := p.engine().NewActivity(context.Background(), &NewActivityRequest{
		Activity: scaffold.Activity{Slug: "ignored"},
		FromFile: file,
	})
	if err != nil {
		t.Fatalf("NewActivity failed: %v", err)
	}
	if result.Slug != "docker" {
		t.Errorf("Slug = %s, want docker", result.Slug)
	}
	doc := p.read(result.RelPath)
	if !strings.Contains(doc, `tags: ["a", "b"]`) || !strings.Contains(doc, "order: 2") {
		t.Errorf("unexpected document:\n%s", doc)
	}
}

func TestNewActivity_RefusesOverwrite(t *testing.T) {
	p := newTestProject(t)
	p.write(contentDir+"/docker/index.mdx", "keep me")
	eng := p.engine()
	req := &NewActivityRequest{Activity: scaffold.Activity{Slug: "docker"}}

	_, err := eng.NewActivity(context.Background(), req)
	if !errors.Is(err, ErrActivityExists) {
		t.Fatalf("expected ErrActivityExists, got %v", err)
	}
	if p.read(contentDir+"/docker/index.mdx") != "keep me" {
		t.Error("existing document was modified")
	}

	req.Force = true
	result, err := eng.NewActivity(context.Background(), req)
	if err != nil {
		t.Fatalf("forced NewActivity failed: %v", err)
	}
	if !result.Overwritten {
		t.Error("expected Overwritten")
	}
}

func TestNewActivity_Validation(t *testing.T) {
	tests := []struct {
		name     string
		activity scaffold.Activity
	}{
		{name: "bad status", activity: scaffold.Activity{Slug: "docker", Status: "published"}},
		{name: "slug with separator", activity: scaffold.Activity{Slug: "a/b"}},
		{name: "traversal slug", activity: scaffold.Activity{Slug: ".."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProject(t)
			_, err := p.engine().NewActivity(context.Background(), &NewActivityRequest{Activity: tt.activity})
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestNewActivity_ContentRootNotFound(t *testing.T) {
	p := newTestProject(t)
	if err := os.RemoveAll(filepath.Join(p.root, "src")); err != nil {
		t.Fatalf("failed to remove content root: %v", err)
	}

	_, err := p.engine().NewActivity(context.Background(), &NewActivityRequest{Activity: scaffold.Activity{Slug: "docker"}})
	if !errors.Is(err, ErrContentRootNotFound) {
		t.Errorf("expected ErrContentRootNotFound, got %v", err)
	}
}
