package typesystem

// Document is the root of a typesystem document.
type Document struct {
	// Package is the dotted package classes belong to unless they override it.
	Package    string          `yaml:"package" toml:"package"`
	Primitives []TypeDef       `yaml:"primitives,omitempty" toml:"primitives"`
	Containers []TypeDef       `yaml:"containers,omitempty" toml:"containers"`
	Enums      []EnumDef       `yaml:"enums,omitempty" toml:"enums"`
	Classes    []ClassDef      `yaml:"classes,omitempty" toml:"classes"`
	Rules      []ConversionDef `yaml:"conversion_rules,omitempty" toml:"conversion_rules"`
}

// TypeDef registers a primitive or container type.
type TypeDef struct {
	Name string `yaml:"name" toml:"name"`
	// Target is the host API base name (e.g., "PyInt").
	Target  string `yaml:"target,omitempty" toml:"target"`
	Include string `yaml:"include,omitempty" toml:"include"`
}

// EnumDef declares an enum, global or inside a class.
type EnumDef struct {
	Name    string `yaml:"name" toml:"name"`
	Include string `yaml:"include,omitempty" toml:"include"`
	// Flags names the flags type paired with the enum.
	Flags    string `yaml:"flags,omitempty" toml:"flags"`
	Generate *bool  `yaml:"generate,omitempty" toml:"generate"`
}

// ClassDef declares a class, struct or namespace.
type ClassDef struct {
	Name string `yaml:"name" toml:"name"`
	// Kind is "value", "object" or "namespace".
	Kind    string `yaml:"kind" toml:"kind"`
	Include string `yaml:"include,omitempty" toml:"include"`
	Package string `yaml:"package,omitempty" toml:"package"`

	Abstract          bool  `yaml:"abstract,omitempty" toml:"abstract"`
	QObject           bool  `yaml:"qobject,omitempty" toml:"qobject"`
	PrivateDestructor bool  `yaml:"private_destructor,omitempty" toml:"private_destructor"`
	Clone             bool  `yaml:"clone,omitempty" toml:"clone"`
	Generate          *bool `yaml:"generate,omitempty" toml:"generate"`

	HeldType string    `yaml:"held_type,omitempty" toml:"held_type"`
	Snips    []SnipDef `yaml:"snips,omitempty" toml:"snips"`

	Enums     []EnumDef     `yaml:"enums,omitempty" toml:"enums"`
	Functions []FunctionDef `yaml:"functions,omitempty" toml:"functions"`
	Classes   []ClassDef    `yaml:"classes,omitempty" toml:"classes"`
}

// SnipDef is a block of user code injected into the wrapper header.
type SnipDef struct {
	// Position is "declaration" or "prototype-initialization".
	Position string `yaml:"position" toml:"position"`
	// Language is "native" (default) or "target".
	Language string `yaml:"language,omitempty" toml:"language"`
	Code     string `yaml:"code" toml:"code"`
}

// FunctionDef declares a method or constructor.
type FunctionDef struct {
	Name string `yaml:"name" toml:"name"`
	// Return is a C++ type spelling ("double", "const Point&"); empty means void.
	Return string   `yaml:"return,omitempty" toml:"return"`
	Args   []ArgDef `yaml:"args,omitempty" toml:"args"`

	Constructor     bool `yaml:"constructor,omitempty" toml:"constructor"`
	CopyConstructor bool `yaml:"copy_constructor,omitempty" toml:"copy_constructor"`
	Abstract        bool `yaml:"abstract,omitempty" toml:"abstract"`
	Virtual         bool `yaml:"virtual,omitempty" toml:"virtual"`
	Private         bool `yaml:"private,omitempty" toml:"private"`
	Const           bool `yaml:"const,omitempty" toml:"const"`
	Removed         bool `yaml:"removed,omitempty" toml:"removed"`
	// Implicit registers a constructor as an implicit conversion into its class.
	Implicit bool `yaml:"implicit,omitempty" toml:"implicit"`
	// ImplementedBy names the class whose body implements the function when
	// it is inherited without an override.
	ImplementedBy string `yaml:"implemented_by,omitempty" toml:"implemented_by"`
}

// ArgDef is a function parameter.
type ArgDef struct {
	Name    string `yaml:"name,omitempty" toml:"name"`
	Type    string `yaml:"type" toml:"type"`
	Default string `yaml:"default,omitempty" toml:"default"`
}

// ConversionDef attaches user converter code to a registered type.
type ConversionDef struct {
	Type string `yaml:"type" toml:"type"`
	Code string `yaml:"code" toml:"code"`
}
