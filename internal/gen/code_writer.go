package gen

import "strings"

const indentUnit = "    "

// codeWriter accumulates C++ text line by line at a current indentation depth.
type codeWriter struct {
	sb    strings.Builder
	depth int
}

// Line writes the concatenated parts as one indented line. No parts writes
// an empty line.
func (w *codeWriter) Line(parts ...string) {
	if len(parts) > 0 {
		w.sb.WriteString(strings.Repeat(indentUnit, w.depth))

		for _, p := range parts {
			w.sb.WriteString(p)
		}
	}

	w.sb.WriteByte('\n')
}

// Block writes multi-line text verbatim, terminating it with a newline if
// it has none. Empty text writes nothing.
func (w *codeWriter) Block(text string) {
	if text == "" {
		return
	}

	w.sb.WriteString(text)

	if !strings.HasSuffix(text, "\n") {
		w.sb.WriteByte('\n')
	}
}

func (w *codeWriter) Indent() { w.depth++ }

func (w *codeWriter) Dedent() {
	if w.depth > 0 {
		w.depth--
	}
}

func (w *codeWriter) String() string { return w.sb.String() }
