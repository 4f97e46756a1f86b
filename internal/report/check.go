package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"header-generator/internal/gen"
)

var (
	okColor    = color.New(color.FgGreen)
	staleColor = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed)
	hintColor  = color.New(color.FgCyan)
)

// WriteCheck prints one status line per file and, when showDiff is set,
// the line diff of every stale file.
func WriteCheck(w io.Writer, statuses []gen.FileStatus, showDiff bool) {
	for _, s := range statuses {
		switch s.State {
		case gen.StateUpToDate:
			okColor.Fprintf(w, "  ok       %s\n", s.Path)
		case gen.StateStale:
			staleColor.Fprintf(w, "  stale    %s\n", s.Path)

			if showDiff {
				fmt.Fprint(w, RenderDiff(s.Diffs))
			}
		case gen.StateMissing:
			errColor.Fprintf(w, "  missing  %s\n", s.Path)
		}
	}

	if gen.UpToDate(statuses) {
		okColor.Fprintf(w, "%d file(s) up to date\n", len(statuses))
		return
	}

	hintColor.Fprintf(w, "run 'header-generator gen' to refresh the output directory\n")
}

// RenderDiff renders line diffs as unified-style "+" and "-" lines.
// Unchanged lines are omitted.
func RenderDiff(diffs []diffmatchpatch.Diff) string {
	var sb strings.Builder

	for _, d := range diffs {
		var prefix string

		var c *color.Color

		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix, c = "+", okColor
		case diffmatchpatch.DiffDelete:
			prefix, c = "-", errColor
		default:
			continue
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			sb.WriteString(c.Sprint("    " + prefix + strings.TrimSuffix(line, "\n")))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
