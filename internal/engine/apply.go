package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/danieljhkim/mdxassets/internal/mdx"
	"github.com/danieljhkim/mdxassets/internal/planner"
	"github.com/danieljhkim/mdxassets/internal/scanner"
)

// applyPlan executes plan one document at a time: insert the component
// import if needed, move files, substitute references, write the document.
// It returns the number of files moved and the rewritten documents.
func (e *Engine) applyPlan(ctx context.Context, plan *planner.Plan) (int, []string, error) {
	moved := 0
	var rewritten []string

	for _, group := range plan.Documents() {
		if err := ctx.Err(); err != nil {
			return moved, rewritten, err
		}

		n, err := e.applyDocument(plan, group)
		moved += n
		if err != nil {
			return moved, rewritten, fmt.Errorf("failed to apply %s: %w", group.DocumentRel, err)
		}
		rewritten = append(rewritten, group.DocumentRel)
	}

	return moved, rewritten, nil
}

func (e *Engine) applyDocument(plan *planner.Plan, group planner.DocumentMoves) (int, error) {
	info, err := e.fs.Stat(group.Document)
	if err != nil {
		return 0, fmt.Errorf("failed to stat document: %w", err)
	}
	data, err := e.fs.ReadFile(group.Document)
	if err != nil {
		return 0, fmt.Errorf("failed to read document: %w", err)
	}
	text := string(data)

	if plan.Mode == planner.ModeMarkdown && plan.Component != "" {
		from := e.cfg.Settings.ComponentImportPath(plan.Component)
		if !mdx.HasImport(text, plan.Component, from) {
			text = mdx.InsertImport(text, mdx.ImportLine(plan.Component, from))
		}
	}

	moved := 0
	for _, m := range group.Moves {
		if m.Shared {
			continue
		}
		if err := e.fs.Move(m.Source, m.Destination); err != nil {
			return moved, fmt.Errorf("failed to move %s: %w", m.Source, err)
		}
		moved++
	}

	text = substitute(text, group.Moves, plan.Mode)

	if err := e.fs.AtomicWrite(group.Document, []byte(text), info.Mode().Perm()); err != nil {
		return moved, fmt.Errorf("failed to write document: %w", err)
	}
	return moved, nil
}

// substitute replaces every occurrence of each match with its replacement.
// Longer matches go first so that a path never corrupts a longer path it
// prefixes. Inbox paths are only replaced where the path ends, so an
// unplanned path that extends a planned one is left as written.
func substitute(text string, moves []planner.MovePlan, mode planner.Mode) string {
	ordered := make([]planner.MovePlan, len(moves))
	copy(ordered, moves)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Match) > len(ordered[j].Match)
	})

	for _, m := range ordered {
		if mode == planner.ModeInbox {
			text = replacePath(text, m.Match, m.Replacement)
		} else {
			text = strings.ReplaceAll(text, m.Match, m.Replacement)
		}
	}
	return text
}

// replacePath replaces the occurrences of p that are followed by the end of
// text or a path terminator.
func replacePath(text, p, replacement string) string {
	if p == "" {
		return text
	}

	var b strings.Builder
	pos := 0
	for {
		i := strings.Index(text[pos:], p)
		if i < 0 {
			break
		}
		start := pos + i
		end := start + len(p)
		if end < len(text) && !scanner.IsPathTerminator(text[end]) {
			b.WriteString(text[pos : start+1])
			pos = start + 1
			continue
		}
		b.WriteString(text[pos:start])
		b.WriteString(replacement)
		pos = end
	}
	b.WriteString(text[pos:])
	return b.String()
}
