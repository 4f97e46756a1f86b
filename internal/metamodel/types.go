package metamodel

import (
	"strings"

	"header-generator/internal/common"
)

// TypeCategory is the semantic category of a type entry.
type TypeCategory int

const (
	CategoryUnknown   TypeCategory = iota
	CategoryPrimitive              // int, double, bool, ...
	CategoryEnum                   // C++ enum
	CategoryFlags                  // flags over an enum (QFlags-like)
	CategoryValue                  // copied by value
	CategoryObject                 // identity type, passed by pointer
	CategoryContainer              // std::list, std::map, ...
	CategoryNamespace              // C++ namespace
)

// String returns the category name as used in typesystem documents.
func (c TypeCategory) String() string {
	switch c {
	case CategoryPrimitive:
		return "primitive"
	case CategoryEnum:
		return "enum"
	case CategoryFlags:
		return "flags"
	case CategoryValue:
		return "value"
	case CategoryObject:
		return "object"
	case CategoryContainer:
		return "container"
	case CategoryNamespace:
		return "namespace"
	default:
		return common.UnknownStr
	}
}

// ParseCategory parses a category name. Returns CategoryUnknown for unknown names.
func ParseCategory(s string) TypeCategory {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primitive":
		return CategoryPrimitive
	case "enum":
		return CategoryEnum
	case "flags", "flag":
		return CategoryFlags
	case "value":
		return CategoryValue
	case "object":
		return CategoryObject
	case "container":
		return CategoryContainer
	case "namespace":
		return CategoryNamespace
	default:
		return CategoryUnknown
	}
}

// Include references the header a type is declared in.
type Include struct {
	File string
	// Local selects the quoted form; global includes use angle brackets.
	Local bool
}

// IsValid reports whether the include names a file.
func (i Include) IsValid() bool {
	return i.File != ""
}

// String renders the preprocessor include line, or "" when invalid.
func (i Include) String() string {
	if !i.IsValid() {
		return ""
	}

	if i.Local {
		return `#include "` + i.File + `"`
	}

	return "#include <" + i.File + ">"
}

// SnipPosition is where a native-code snippet is injected into a wrapper header.
type SnipPosition int

const (
	// SnipDeclaration snippets go after the includes, before the wrapper class.
	SnipDeclaration SnipPosition = iota
	// SnipPrototypeInitialization snippets go at the end of the wrapper class body.
	SnipPrototypeInitialization
)

// String returns the position name as used in typesystem documents.
func (p SnipPosition) String() string {
	switch p {
	case SnipDeclaration:
		return "declaration"
	case SnipPrototypeInitialization:
		return "prototype-initialization"
	default:
		return common.UnknownStr
	}
}

// SnipLanguage tells which side of the binding a snippet belongs to.
type SnipLanguage int

const (
	SnipNative SnipLanguage = iota
	SnipTarget
)

// CodeSnip is an opaque block of user code attached to a type entry.
type CodeSnip struct {
	Position SnipPosition
	Language SnipLanguage
	Code     string
}

// TypeEntry is the typesystem registration of a C++ type.
type TypeEntry struct {
	Name     string
	Category TypeCategory
	Include  Include
	// ConversionRule is user-supplied converter code spliced verbatim.
	ConversionRule string
	HeldType       string
	// TargetName is the host API base name used for type checks of
	// primitives and containers (e.g. "PyInt").
	TargetName string
	// QObject marks object types rooted in the runtime's base object class.
	QObject bool
	// Flags is the flags entry paired with an enum entry, if any.
	Flags     *TypeEntry
	CodeSnips []CodeSnip
	// Generate is false for entries whose bindings live in another module.
	Generate bool
}

// IsEnum reports whether the entry is an enum.
func (t *TypeEntry) IsEnum() bool { return t.Category == CategoryEnum }

// IsFlags reports whether the entry is a flags type.
func (t *TypeEntry) IsFlags() bool { return t.Category == CategoryFlags }

// IsValue reports whether the entry has value semantics.
func (t *TypeEntry) IsValue() bool { return t.Category == CategoryValue }

// IsObject reports whether the entry has object (identity) semantics.
func (t *TypeEntry) IsObject() bool { return t.Category == CategoryObject }

// IsNamespace reports whether the entry is a namespace.
func (t *TypeEntry) IsNamespace() bool { return t.Category == CategoryNamespace }

// HasConversionRule reports whether the user supplied converter code.
func (t *TypeEntry) HasConversionRule() bool { return t.ConversionRule != "" }

// Snips returns the entry's snippets at the given position and language, in order.
func (t *TypeEntry) Snips(pos SnipPosition, lang SnipLanguage) []CodeSnip {
	var out []CodeSnip

	for _, s := range t.CodeSnips {
		if s.Position == pos && s.Language == lang {
			out = append(out, s)
		}
	}

	return out
}

// TypeRef is a use of a type entry in a signature.
type TypeRef struct {
	Entry        *TypeEntry
	Const        bool
	Reference    bool
	Indirections int
}

// Name returns the referenced entry's name.
func (r *TypeRef) Name() string {
	if r == nil || r.Entry == nil {
		return ""
	}

	return r.Entry.Name
}

// IsVoid reports whether the reference denotes no value. A void pointer
// is a value.
func (r *TypeRef) IsVoid() bool {
	return r == nil || r.Entry == nil || (r.Entry.Name == "void" && r.Indirections == 0 && !r.Reference)
}

// IsVoidPointer reports whether the reference is an untyped pointer ("void*").
func (r *TypeRef) IsVoidPointer() bool {
	return r != nil && r.Entry != nil && r.Entry.Name == "void" && r.Indirections > 0
}

// IsObject reports whether the referenced entry is an object type.
func (r *TypeRef) IsObject() bool {
	return r != nil && r.Entry != nil && r.Entry.IsObject()
}

// IsQObject reports whether the referenced entry derives from the runtime base object.
func (r *TypeRef) IsQObject() bool {
	return r != nil && r.Entry != nil && r.Entry.QObject
}

// CppSignature renders the C++ spelling, e.g. "const Point&" or "Shape*".
func (r *TypeRef) CppSignature() string {
	if r == nil || r.Entry == nil {
		return "void"
	}

	var sb strings.Builder

	if r.Const {
		sb.WriteString("const ")
	}

	sb.WriteString(r.Entry.Name)
	sb.WriteString(strings.Repeat("*", r.Indirections))

	if r.Reference {
		sb.WriteString("&")
	}

	return sb.String()
}

// ReturnType renders the type without const-reference decoration, which is
// how a default value of the type is constructed.
func (r *TypeRef) ReturnType() string {
	if r == nil || r.Entry == nil {
		return "void"
	}

	return r.Entry.Name + strings.Repeat("*", r.Indirections)
}
