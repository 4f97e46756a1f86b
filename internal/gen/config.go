package gen

import "header-generator/internal/plan"

// Config holds configuration for header generation.
type Config struct {
	// Module is the binding module name; it names the umbrella header and
	// its guard. Defaults to the last element of Package.
	Module string
	// Package is the dotted package the umbrella header is placed under.
	// Inferred from the model when empty.
	Package string
	// License is placed at the top of every header. Plain text is wrapped
	// into a block comment; text that already is a comment is kept.
	License string
	// RuntimeNamespace is the C++ namespace of the binding runtime.
	RuntimeNamespace string
	// RuntimeHeader is included by every wrapper header.
	RuntimeHeader string
	// LocalMacro marks wrapper classes as module-local.
	LocalMacro string
	// ModuleHeaderSuffix is appended to the lower-cased module name.
	ModuleHeaderSuffix string
	// Naming carries the wrapper file suffix and the runtime object base.
	Naming plan.Options
}

// DefaultConfig returns the conventions of the reference runtime.
func DefaultConfig() Config {
	return Config{
		RuntimeNamespace:   "Shiboken",
		RuntimeHeader:      "shiboken.h",
		LocalMacro:         "SHIBOKEN_LOCAL",
		ModuleHeaderSuffix: "_python.h",
		Naming:             plan.DefaultOptions(),
	}
}
