package planner

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/mdxassets/internal/config"
	"github.com/danieljhkim/mdxassets/internal/fsops"
	"github.com/danieljhkim/mdxassets/internal/mdx"
	"github.com/danieljhkim/mdxassets/internal/scanner"
)

// Options configures a Builder.
type Options struct {
	// Paths locates the asset root and canonical directories
	Paths config.Paths

	// Filter selects Markdown image candidates
	Filter scanner.Filter

	// InboxPrefix is the web path of the staging folder
	InboxPrefix string

	// Component is the figure component emitted in Markdown mode
	Component string
}

// Builder accumulates a Plan one document at a time.
// Documents must be added in lexicographic order for reproducible numbering.
type Builder struct {
	mode  Mode
	opts  Options
	fs    fsops.FS
	alloc *DestinationAllocator
	plan  *Plan

	// relocated maps a source file to the destination chosen for it
	relocated map[string]string
}

// NewBuilder creates a Builder for the given mode.
func NewBuilder(mode Mode, opts Options, fs fsops.FS) *Builder {
	component := ""
	if mode == ModeMarkdown {
		component = opts.Component
	}
	return &Builder{
		mode:      mode,
		opts:      opts,
		fs:        fs,
		alloc:     NewDestinationAllocator(fs),
		plan:      NewPlan(mode, component),
		relocated: make(map[string]string),
	}
}

// Plan returns the plan built so far.
func (b *Builder) Plan() *Plan {
	return b.plan
}

// Add plans every reference of doc. Only destination exhaustion and I/O
// failures are returned as errors; per-reference problems are recorded.
func (b *Builder) Add(doc *scanner.Document) error {
	switch b.mode {
	case ModeMarkdown:
		return b.addMarkdown(doc)
	case ModeInbox:
		return b.addInbox(doc)
	default:
		return fmt.Errorf("unknown planning mode: %s", b.mode)
	}
}

// ResolveSlug returns the activity slug of doc: a valid front-matter
// override, else the folder slug. warning is set for a rejected override.
func ResolveSlug(doc *scanner.Document) (slug, warning string) {
	override, ok := mdx.FrontMatterSlug(doc.Text)
	if !ok {
		return doc.FolderSlug, ""
	}
	if err := fsops.ValidateIdentifier(override); err != nil {
		return doc.FolderSlug, fmt.Sprintf("%s: ignoring front-matter slug %q (%v)", doc.RelPath, override, err)
	}
	return override, ""
}

// WebPath expresses abs as a site-root web path relative to assetRoot.
func WebPath(assetRoot, abs string) (string, error) {
	rel, err := filepath.Rel(assetRoot, abs)
	if err != nil {
		return "", fmt.Errorf("failed to compute web path: %w", err)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%s is outside the asset root", abs)
	}
	return "/" + rel, nil
}

func (b *Builder) slug(doc *scanner.Document) string {
	slug, warning := ResolveSlug(doc)
	if warning != "" {
		b.plan.AddWarning(warning)
	}
	return slug
}

// destination returns where src goes for (slug, stem). shared is true when
// no move is needed because an earlier plan already relocates src or src
// already sits at its canonical place.
func (b *Builder) destination(src, slug, stem string) (dst string, shared bool, err error) {
	if prev, ok := b.relocated[src]; ok {
		return prev, true, nil
	}

	candidate := filepath.Join(b.opts.Paths.DestinationDir(slug, stem), filepath.Base(src))
	if candidate == src && !b.alloc.IsClaimed(src) {
		b.relocated[src] = src
		return src, true, nil
	}

	dst, err = b.alloc.Allocate(candidate)
	if err != nil {
		return "", false, err
	}
	b.relocated[src] = dst
	return dst, false, nil
}

func (b *Builder) addMarkdown(doc *scanner.Document) error {
	slug := b.slug(doc)
	seen := make(map[string]bool)

	for ref := range scanner.MarkdownImages(doc.Text) {
		if seen[ref.Raw] {
			continue
		}
		seen[ref.Raw] = true

		if ok, reason := b.opts.Filter.Check(ref.Path); !ok {
			b.skip(doc, ref.Path, reason)
			continue
		}

		src := filepath.Clean(filepath.Join(doc.Dir(), filepath.FromSlash(ref.Path)))
		isFile, err := b.fs.IsFile(src)
		if err != nil {
			b.skip(doc, ref.Path, fmt.Sprintf("cannot stat source: %v", err))
			continue
		}
		if !isFile {
			b.skip(doc, ref.Path, "file not found")
			continue
		}

		dst, shared, err := b.destination(src, slug, doc.Stem)
		if err != nil {
			return err
		}
		web, err := WebPath(b.opts.Paths.AssetRoot, dst)
		if err != nil {
			return err
		}

		b.plan.AddMove(MovePlan{
			Document:       doc.Path,
			DocumentRel:    doc.RelPath,
			Source:         src,
			Destination:    dst,
			DestinationWeb: web,
			Match:          ref.Raw,
			Replacement: mdx.RenderTag(b.opts.Component, mdx.Figure{
				Src:        web,
				Alt:        ref.Alt,
				Caption:    ref.Title,
				HasCaption: ref.HasTitle,
			}),
			Shared: shared,
		})
	}

	return nil
}

func (b *Builder) addInbox(doc *scanner.Document) error {
	slug := b.slug(doc)

	for ref := range scanner.InboxPaths(doc.Text, b.opts.InboxPrefix) {
		clean := path.Clean(ref.Path)
		if !strings.HasPrefix(clean, b.opts.InboxPrefix) {
			b.skip(doc, ref.Path, "path escapes the inbox")
			continue
		}

		src := filepath.Join(b.opts.Paths.AssetRoot, filepath.FromSlash(strings.TrimPrefix(clean, "/")))
		isFile, err := b.fs.IsFile(src)
		if err != nil {
			b.skip(doc, ref.Path, fmt.Sprintf("cannot stat source: %v", err))
			continue
		}
		if !isFile {
			b.plan.AddMissing(Missing{DocumentRel: doc.RelPath, Reference: ref.Path})
			continue
		}

		dst, shared, err := b.destination(src, slug, doc.Stem)
		if err != nil {
			return err
		}
		web, err := WebPath(b.opts.Paths.AssetRoot, dst)
		if err != nil {
			return err
		}

		b.plan.AddMove(MovePlan{
			Document:       doc.Path,
			DocumentRel:    doc.RelPath,
			Source:         src,
			Destination:    dst,
			DestinationWeb: web,
			Match:          ref.Path,
			Replacement:    web,
			Shared:         shared,
		})
	}

	return nil
}

func (b *Builder) skip(doc *scanner.Document, ref, reason string) {
	b.plan.AddSkipped(Skipped{DocumentRel: doc.RelPath, Reference: ref, Reason: reason})
}
