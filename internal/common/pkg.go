package common

import (
	"path"
	"strings"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// PackageDir returns the output sub directory for a dotted package name
// (e.g., "sample.extra" -> "sample/extra").
// Returns empty string if pkg is empty.
func PackageDir(pkg string) string {
	if pkg == "" {
		return ""
	}

	return path.Join(strings.Split(pkg, ".")...)
}

// PackageBase returns the last element of a dotted package name.
func PackageBase(pkg string) string {
	if i := strings.LastIndexByte(pkg, '.'); i >= 0 {
		return pkg[i+1:]
	}

	return pkg
}
