package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/danieljhkim/mdxassets/internal/engine"
)

// dryRunReminder closes every dry run that found work.
const dryRunReminder = "Dry run. Re-run with --write to apply."

// printRunResult prints the human-readable report of a migrate or organize run.
// The closing line is omitted when the run failed.
func printRunResult(title, root string, result *engine.RunResult, failed bool) {
	plan := result.Plan

	PrintSection(title)
	PrintLabelValue("Documents", strconv.Itoa(result.Documents))
	PrintLabelValue("Files to move", strconv.Itoa(plan.FileMoves()))
	PrintLabelValue("References to rewrite", strconv.Itoa(len(plan.Moves)))
	_, _ = fmt.Fprintln(out)

	if len(plan.Moves) == 0 {
		PrintEmptyState("Nothing to migrate.")
	} else {
		items := make([]string, 0, len(plan.Moves))
		for _, m := range plan.Moves {
			item := fmt.Sprintf("%s: %s -> %s", m.DocumentRel, relPath(root, m.Source), m.DestinationWeb)
			if m.Shared {
				item += " (rewrite only)"
			}
			items = append(items, item)
		}
		PrintList(items, 1)
	}

	for _, w := range plan.Warnings {
		PrintWarning(w)
	}

	if len(plan.Missing) > 0 {
		_, _ = fmt.Fprintln(out)
		PrintWarning(fmt.Sprintf("%s not found:", PrintCount(len(plan.Missing), "reference", "references")))
		items := make([]string, 0, len(plan.Missing))
		for _, m := range plan.Missing {
			items = append(items, fmt.Sprintf("%s: %s", m.DocumentRel, m.Reference))
		}
		PrintList(items, 1)
	}

	if len(plan.Skipped) > 0 {
		if verbose {
			_, _ = fmt.Fprintln(out)
			PrintSubsection("Skipped (handle manually):")
			for _, s := range plan.Skipped {
				PrintDetail(fmt.Sprintf("%s: %s (%s)", s.DocumentRel, s.Reference, s.Reason))
			}
		} else {
			PrintEmptyState(fmt.Sprintf("%s skipped; use --verbose to list", PrintCount(len(plan.Skipped), "reference", "references")))
		}
	}

	_, _ = fmt.Fprintln(out)
	if failed {
		return
	}
	if result.DryRun {
		if len(plan.Moves) > 0 {
			PrintInfo(dryRunReminder)
		}
		return
	}
	PrintSuccess(fmt.Sprintf("Moved %s, rewrote %s",
		PrintCount(result.Moved, "file", "files"),
		PrintCount(len(result.Rewritten), "document", "documents")))
}

// relPath shows p relative to root when possible.
func relPath(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return p
	}
	return filepath.ToSlash(rel)
}
