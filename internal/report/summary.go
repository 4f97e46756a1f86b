package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"header-generator/internal/diagnostic"
	"header-generator/internal/gen"
)

// WriteSummary prints the written files with their sizes.
func WriteSummary(w io.Writer, outputDir string, files []gen.GeneratedFile) {
	var total uint64

	for _, f := range files {
		size := uint64(len(f.Content))
		total += size

		fmt.Fprintf(w, "  %-40s %s\n", f.Path, humanize.Bytes(size))
	}

	okColor.Fprintf(w, "Generated %d header(s), %s in %s\n", len(files), humanize.Bytes(total), outputDir)
}

// WriteDiagnostics prints diagnostics, errors first. Nothing is printed for
// an empty set.
func WriteDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		c := hintColor

		switch d.Severity {
		case diagnostic.DiagnosticError:
			c = errColor
		case diagnostic.DiagnosticWarning:
			c = staleColor
		case diagnostic.DiagnosticInfo:
		}

		c.Fprintf(w, "%-7s %s\n", d.Severity.String()+":", d.String())

		for _, s := range d.Suggestions {
			hintColor.Fprintf(w, "        did you mean %q?\n", s)
		}
	}
}
