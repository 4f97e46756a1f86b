package gen

import "strings"

// licenseComment renders the license header followed by a blank line, or ""
// when there is no license.
func licenseComment(text string) string {
	text = strings.TrimRight(text, " \t\r\n")
	if strings.TrimSpace(text) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(text, " \t\r\n")
	if strings.HasPrefix(trimmed, "/*") || strings.HasPrefix(trimmed, "//") {
		return trimmed + "\n\n"
	}

	var w codeWriter

	w.Line("/*")

	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			w.Line(" *")
		} else {
			w.Line(" * ", line)
		}
	}

	w.Line(" */")
	w.Line()

	return w.String()
}
