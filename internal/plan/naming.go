package plan

import (
	"path"
	"strings"

	"header-generator/internal/common"
	"header-generator/internal/metamodel"
)

// Options carries the naming conventions that vary between runtimes.
type Options struct {
	// WrapperSuffix is appended to the normalized class name to form the
	// wrapper header file name.
	WrapperSuffix string
	// ObjectBase is the runtime's base object class; its subclasses import
	// its parent accessor.
	ObjectBase string
}

// DefaultOptions returns the conventions of the reference runtime.
func DefaultOptions() Options {
	return Options{
		WrapperSuffix: "_wrapper.h",
		ObjectBase:    "QObject",
	}
}

// BaseName returns the host-side identifier stem of a type entry
// (e.g. "PyPoint", "PyShape_Kind", or the entry's TargetName for primitives).
func BaseName(t *metamodel.TypeEntry) string {
	if t.TargetName != "" {
		return t.TargetName
	}

	return "Py" + strings.ReplaceAll(t.Name, "::", "_")
}

// TypeObjectName returns the host type object of a type entry.
func TypeObjectName(t *metamodel.TypeEntry) string {
	return BaseName(t) + "_Type"
}

// CheckFunction returns the host type-check macro of a type entry.
func CheckFunction(t *metamodel.TypeEntry) string {
	return BaseName(t) + "_Check"
}

// Specialization returns the Converter template argument for an entry.
func Specialization(t *metamodel.TypeEntry, pointer bool) string {
	if pointer {
		return t.Name + "*"
	}

	return t.Name
}

// ConverterName renders "Converter<T >" with the spacing that keeps nested
// template arguments from closing with ">>".
func ConverterName(specialization string) string {
	return "Converter<" + specialization + " >"
}

// WrapperName returns the generated subclass name of a class.
func WrapperName(c *metamodel.Class) string {
	return strings.ReplaceAll(c.QualifiedName, "::", "_") + "Wrapper"
}

// WrapperFileName returns the wrapper header path relative to the output
// directory: package sub directory + lower-cased, "::"-normalized name + suffix.
func WrapperFileName(c *metamodel.Class, suffix string) string {
	name := strings.ReplaceAll(strings.ToLower(c.QualifiedName), "::", "_") + suffix

	return path.Join(common.PackageDir(c.Package), name)
}

// GuardName returns the include guard token for an identifier.
func GuardName(id string) string {
	return strings.ToUpper(identifierize(id)) + "_H"
}

func identifierize(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}

		return '_'
	}, s)
}
