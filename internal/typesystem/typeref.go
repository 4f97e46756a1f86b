package typesystem

import "strings"

// typeSpelling is a parsed C++ type spelling such as "const Point&".
type typeSpelling struct {
	Name         string
	Const        bool
	Reference    bool
	Indirections int
}

// parseTypeSpelling splits const, pointer and reference decoration from
// the type name. Template arguments are kept in the name.
func parseTypeSpelling(s string) typeSpelling {
	var ts typeSpelling

	s = strings.TrimSpace(s)

	if rest, ok := strings.CutPrefix(s, "const "); ok {
		ts.Const = true
		s = strings.TrimSpace(rest)
	}

	if rest, ok := strings.CutSuffix(s, "&"); ok {
		ts.Reference = true
		s = strings.TrimSpace(rest)
	}

	for {
		rest, ok := strings.CutSuffix(s, "*")
		if !ok {
			break
		}

		ts.Indirections++
		s = strings.TrimSpace(rest)
	}

	ts.Name = s

	return ts
}

// isVoid reports whether the spelling denotes no value.
func (ts typeSpelling) isVoid() bool {
	return (ts.Name == "" || ts.Name == "void") && ts.Indirections == 0
}

// scopeCandidates lists the names a type used inside scope may refer to,
// innermost first: "Shape::Vertex::Kind", "Shape::Kind", "Kind".
func scopeCandidates(name, scope string) []string {
	var out []string

	for scope != "" {
		out = append(out, scope+"::"+name)

		i := strings.LastIndex(scope, "::")
		if i < 0 {
			break
		}

		scope = scope[:i]
	}

	return append(out, name)
}

// qualify joins a scope and a name with "::".
func qualify(scope, name string) string {
	if scope == "" {
		return name
	}

	return scope + "::" + name
}

// parseInclude reads "point.h" or <point.h> as a global include and
// "\"point.h\"" as a local one.
func parseInclude(s string) (file string, local bool) {
	s = strings.TrimSpace(s)

	switch {
	case len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"':
		return s[1 : len(s)-1], true
	case len(s) >= 2 && s[0] == '<' && s[len(s)-1] == '>':
		return s[1 : len(s)-1], false
	default:
		return s, false
	}
}
