package plan

import (
	"github.com/cockroachdb/errors"

	"header-generator/internal/common"
	"header-generator/internal/diagnostic"
	"header-generator/internal/metamodel"
)

// ErrContractViolation marks metamodel facts the generator cannot project
// into valid code (ineligible categories, dangling references). It is a
// caller bug, never recovered from.
var ErrContractViolation = errors.New("metamodel contract violation")

// FunctionRoute is how a function appears in its wrapper class.
type FunctionRoute int

const (
	// RouteSkip - nothing is emitted.
	RouteSkip FunctionRoute = iota
	// RouteDeclareOnly - the signature is redeclared without a dispatcher.
	RouteDeclareOnly
	// RouteDeclareAndDispatch - the signature plus a static dispatcher.
	RouteDeclareAndDispatch
)

// String returns a human-readable route name.
func (r FunctionRoute) String() string {
	switch r {
	case RouteSkip:
		return "skip"
	case RouteDeclareOnly:
		return "declare"
	case RouteDeclareAndDispatch:
		return "declare+dispatch"
	default:
		return common.UnknownStr
	}
}

// DispatchBody is what a dispatcher does.
type DispatchBody int

const (
	// BodyNone - no dispatcher is emitted.
	BodyNone DispatchBody = iota
	// BodyCallThrough - explicit Implementor::fn(args) call on the instance.
	BodyCallThrough
	// BodyReturnNull - default stub returning 0 (object, QObject and void returns).
	BodyReturnNull
	// BodyReturnDefault - default stub returning a default-constructed value.
	BodyReturnDefault
)

// String returns a human-readable body name.
func (b DispatchBody) String() string {
	switch b {
	case BodyNone:
		return "none"
	case BodyCallThrough:
		return "call-through"
	case BodyReturnNull:
		return "return-null"
	case BodyReturnDefault:
		return "return-default"
	default:
		return common.UnknownStr
	}
}

// CreatePath is how Converter<T>::createWrapper builds the host object.
type CreatePath int

const (
	// CreateViaObjectWrapper - PyBaseWrapper_New for value and object types.
	CreateViaObjectWrapper CreatePath = iota
	// CreateViaEnum - PyEnumObject_New carrying an integral value and a label.
	CreateViaEnum
)

// String returns a human-readable creation path name.
func (p CreatePath) String() string {
	switch p {
	case CreateViaObjectWrapper:
		return "object-wrapper"
	case CreateViaEnum:
		return "enum"
	default:
		return common.UnknownStr
	}
}

// ConverterShape is the set of Converter<T> members a type requires.
type ConverterShape struct {
	IsConvertible bool
	CreateWrapper bool
	ToPython      bool
	ToCpp         bool
	CopyCppObject bool
}

// Members lists the required member names in declaration order.
func (s ConverterShape) Members() []string {
	var out []string

	if s.IsConvertible {
		out = append(out, "isConvertible")
	}

	if s.CreateWrapper {
		out = append(out, "createWrapper")
	}

	if s.CopyCppObject {
		out = append(out, "copyCppObject")
	}

	if s.ToPython {
		out = append(out, "toPython")
	}

	if s.ToCpp {
		out = append(out, "toCpp")
	}

	return out
}

// Conversion is one implicit conversion path into a converter's type.
type Conversion struct {
	Function *metamodel.Function
	// Source is the first argument's type.
	Source *metamodel.TypeRef
	// Check is the host runtime type-check function for Source (e.g. "PyInt_Check").
	Check string
	// SourceConverter is the specialization converting Source (e.g. "Converter<int >").
	SourceConverter string
}

// ConverterSpec is the full converter decision for one type entry.
type ConverterSpec struct {
	Entry *metamodel.TypeEntry
	// Specialization is the template argument, pointer-qualified for
	// abstract and object types (e.g. "Point", "Shape*").
	Specialization string
	// TypeObject is the host type object name (e.g. "PyPoint_Type").
	TypeObject  string
	Shape       ConverterShape
	Create      CreatePath
	Conversions []Conversion
	// UserRule suppresses implementation emission; the declaration stays.
	UserRule bool
}

// FunctionPlan is the routing decision for one function of a wrapper.
type FunctionPlan struct {
	Function *metamodel.Function
	Route    FunctionRoute
	// Virtual prefixes the declaration with "virtual".
	Virtual bool
	Body    DispatchBody
}

// WrapperSpec is everything needed to emit one wrapper-class header.
type WrapperSpec struct {
	Class *metamodel.Class
	// WrapperName is the generated subclass name (e.g. "ShapeWrapper").
	WrapperName string
	// BaseName is the qualified C++ name of the wrapped class.
	BaseName  string
	GuardName string
	// FileName is relative to the output directory.
	FileName string
	Include  metamodel.Include
	// EmitBody is false for namespaces and private-destructor classes.
	EmitBody        bool
	CopyConstructor bool
	Functions       []FunctionPlan
	Destructor      string
	// ImportParent names the base whose parent accessor is imported, or "".
	ImportParent string
	// DeclarationSnips go after the includes; EndSnips close the class body.
	DeclarationSnips []string
	EndSnips         []string
}

// Dispatchers returns the functions that get a static dispatcher.
func (w *WrapperSpec) Dispatchers() []FunctionPlan {
	var out []FunctionPlan

	for _, fp := range w.Functions {
		if fp.Route == RouteDeclareAndDispatch {
			out = append(out, fp)
		}
	}

	return out
}

// EntryKind identifies what produced a module header entry.
type EntryKind int

const (
	EntryGlobalEnum EntryKind = iota
	EntryClassEnum
	EntryFlags
	EntryInnerClass
	EntryClass
)

// String returns a human-readable entry kind.
func (k EntryKind) String() string {
	switch k {
	case EntryGlobalEnum:
		return "global-enum"
	case EntryClassEnum:
		return "class-enum"
	case EntryFlags:
		return "flags"
	case EntryInnerClass:
		return "inner-class"
	case EntryClass:
		return "class"
	default:
		return common.UnknownStr
	}
}

// ModuleEntry is one type's contribution to the umbrella header.
type ModuleEntry struct {
	Kind  EntryKind
	Entry *metamodel.TypeEntry
	// Class is set for class and inner-class entries.
	Class *metamodel.Class
	// NewFunc emits the "<Base>_New" constructor prototype.
	NewFunc bool
	// TypeCheck emits the type object declaration and check macros.
	TypeCheck bool
	// CptrMacro emits the typed pointer cast macro.
	CptrMacro bool
	Converter *ConverterSpec
}

// ModulePlan is everything needed to assemble one umbrella module header.
type ModulePlan struct {
	Package string
	// ClassIncludes are de-duplicated, in first-seen order.
	ClassIncludes []metamodel.Include
	// EnumIncludes are global enum include files, de-duplicated.
	EnumIncludes      []string
	PrimitiveIncludes []metamodel.Include
	ContainerIncludes []metamodel.Include
	Entries           []ModuleEntry
	// ConversionRules are entries carrying user converter code, in registration order.
	ConversionRules []*metamodel.TypeEntry
	Diagnostics     diagnostic.Diagnostics
}

// Converters returns the converter specs of all entries, in order.
func (m *ModulePlan) Converters() []*ConverterSpec {
	var out []*ConverterSpec

	for _, e := range m.Entries {
		if e.Converter != nil {
			out = append(out, e.Converter)
		}
	}

	return out
}
