package gen

import "header-generator/internal/plan"

// moduleRuntimeIncludes open every module header.
var moduleRuntimeIncludes = []string{
	"Python.h",
	"conversions.h",
	"pyenum.h",
	"basewrapper.h",
	"bindingmanager.h",
}

// moduleStreams are the four text streams filled while walking module entries.
type moduleStreams struct {
	classIncludes codeWriter
	typeStuff     codeWriter
	convDecl      codeWriter
	convImpl      codeWriter
}

// ModuleGuard returns the include guard of a module's umbrella header.
func ModuleGuard(module string) string {
	return plan.GuardName(module + "_python")
}

// AssembleModule renders the umbrella header of a module from its plan.
func AssembleModule(mp *plan.ModulePlan, module string, cfg Config) string {
	var s moduleStreams

	for _, inc := range mp.ClassIncludes {
		s.classIncludes.Line(inc.String())
	}

	s.typeStuff.Line("// Global enums")

	for _, e := range mp.Entries {
		writeEntry(&s, e, cfg)
	}

	guard := ModuleGuard(module)

	var w codeWriter

	w.Block(licenseComment(cfg.License))
	w.Line("#ifndef ", guard)
	w.Line("#define ", guard)
	w.Line()

	for _, inc := range moduleRuntimeIncludes {
		w.Line("#include <", inc, ">")
	}

	w.Line()
	w.Line("#include <memory>")
	w.Line()

	w.Line("// Class Includes")
	w.Block(s.classIncludes.String())
	w.Line()

	if len(mp.EnumIncludes) > 0 {
		w.Line("// Enum Includes")

		for _, inc := range mp.EnumIncludes {
			w.Line("#include <", inc, ">")
		}

		w.Line()
	}

	if len(mp.PrimitiveIncludes) > 0 {
		w.Line("// Conversion Includes - Primitive Types")

		for _, inc := range mp.PrimitiveIncludes {
			w.Line(inc.String())
		}

		w.Line()
	}

	if len(mp.ContainerIncludes) > 0 {
		w.Line("// Conversion Includes - Container Types")

		for _, inc := range mp.ContainerIncludes {
			w.Line(inc.String())
		}

		w.Line()
	}

	w.Line(`extern "C"`)
	w.Line("{")
	w.Line()
	w.Block(s.typeStuff.String())
	w.Line(`} // extern "C"`)
	w.Line()

	w.Line("namespace ", cfg.RuntimeNamespace)
	w.Line("{")
	w.Line()
	w.Line("// Generated converters declarations ----------------------------------")
	w.Line()
	w.Block(s.convDecl.String())
	w.Line("// User defined converters --------------------------------------------")

	for _, t := range mp.ConversionRules {
		w.Line("// Conversion rule for: ", t.Name)
		w.Block(t.ConversionRule)
	}

	w.Line("// Generated converters implementations -------------------------------")
	w.Line()
	w.Block(s.convImpl.String())
	w.Line("} // namespace ", cfg.RuntimeNamespace)
	w.Line()
	w.Line("#endif // ", guard)

	return w.String()
}

// writeEntry adds one module entry to the registration, declaration and
// implementation streams.
func writeEntry(s *moduleStreams, e plan.ModuleEntry, cfg Config) {
	if e.NewFunc {
		s.typeStuff.Line("PyAPI_FUNC(PyObject*) ", plan.BaseName(e.Entry),
			"_New(PyTypeObject* type, PyObject* args, PyObject* kwds);")
	}

	if e.TypeCheck {
		writeTypeCheck(&s.typeStuff, e.Entry)
	}

	if e.CptrMacro {
		s.typeStuff.Line("#define ", plan.BaseName(e.Entry), "_cptr(pyobj) ((",
			e.Class.QualifiedName, "*)PyBaseWrapper_cptr(pyobj))")
	}

	if e.TypeCheck {
		s.typeStuff.Line()
	}

	if e.Converter == nil {
		return
	}

	writeConverterDecl(&s.convDecl, e.Converter)
	s.convDecl.Line()
	writeConverterImpl(&s.convImpl, e.Converter, cfg.RuntimeNamespace)
}
