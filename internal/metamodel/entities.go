package metamodel

import (
	"strings"

	"header-generator/internal/common"
)

// Argument is a function parameter.
type Argument struct {
	Name         string
	Type         *TypeRef
	DefaultValue string
}

// Function is a C++ function, method or constructor.
type Function struct {
	Name string
	// Return is nil for constructors and void functions.
	Return    *TypeRef
	Arguments []*Argument

	Constructor     bool
	CopyConstructor bool
	Abstract        bool
	Virtual         bool
	Private         bool
	Const           bool
	// ModifiedRemoved marks functions dropped from the binding surface by configuration.
	ModifiedRemoved bool

	// Owner is the class the function is listed on.
	Owner *Class
	// Implementor is the class whose body implements the function. It
	// differs from Owner for functions inherited without an override.
	Implementor *Class
}

// IsInherited reports whether the function is an inherited pass-through.
func (f *Function) IsInherited() bool {
	return f.Implementor != f.Owner
}

// FirstArgument returns the first argument, or nil.
func (f *Function) FirstArgument() *Argument {
	first, _ := common.First(f.Arguments)

	return first
}

// Enum is a C++ enum, global or nested in a class.
type Enum struct {
	Name        string
	Entry       *TypeEntry
	IncludeFile string
	Enclosing   *Class
}

// Class is a C++ class, struct or namespace.
type Class struct {
	// Name is the unqualified name.
	Name          string
	QualifiedName string
	Package       string
	Entry         *TypeEntry

	Abstract          bool
	QObject           bool
	PrivateDestructor bool
	CloneOperator     bool

	Functions    []*Function
	Enums        []*Enum
	InnerClasses []*Class
	Enclosing    *Class
}

// IsNamespace reports whether the class is a namespace.
func (c *Class) IsNamespace() bool {
	return c.Entry != nil && c.Entry.IsNamespace()
}

// ShouldGenerate reports whether bindings for the class belong to this module.
func (c *Class) ShouldGenerate() bool {
	return c.Entry != nil && c.Entry.Generate
}

// IsNested reports whether the class is declared inside another class.
func (c *Class) IsNested() bool {
	return c.Enclosing != nil
}

// FullName returns the dotted package-qualified name used in logs.
func (c *Class) FullName() string {
	if c.Package == "" {
		return c.QualifiedName
	}

	return c.Package + "." + strings.ReplaceAll(c.QualifiedName, "::", ".")
}
