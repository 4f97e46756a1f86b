package gen

import (
	"header-generator/internal/common"
	"header-generator/internal/metamodel"
	"header-generator/internal/plan"
)

// writeTypeCheck writes the type object declaration and its check macros.
func writeTypeCheck(w *codeWriter, t *metamodel.TypeEntry) {
	typeObject := plan.TypeObjectName(t)
	check := plan.CheckFunction(t)

	w.Line("PyAPI_DATA(PyTypeObject) ", typeObject, ";")
	w.Line("#define ", check, "(op) PyObject_TypeCheck(op, &", typeObject, ")")
	w.Line("#define ", check, "Exact(op) ((op)->ob_type == &", typeObject, ")")
}

// createWrapperParam is the createWrapper parameter: enums travel by value,
// everything else by const pointer.
func createWrapperParam(spec *plan.ConverterSpec) string {
	if spec.Create == plan.CreateViaEnum {
		return spec.Entry.Name + " cppobj"
	}

	return "const " + spec.Entry.Name + "* cppobj"
}

func converterBase(spec *plan.ConverterSpec) string {
	if spec.Create == plan.CreateViaEnum {
		return "Converter_CppEnum<" + spec.Specialization + " >"
	}

	return "ConverterBase<" + spec.Specialization + " >"
}

// writeConverterDecl writes the Converter<T> specialization declaration,
// members in plan.ConverterShape.Members order.
func writeConverterDecl(w *codeWriter, spec *plan.ConverterSpec) {
	name := spec.Entry.Name

	w.Line("template<>")
	w.Line("struct ", plan.ConverterName(spec.Specialization), " : ", converterBase(spec))
	w.Line("{")
	w.Indent()

	for _, member := range spec.Shape.Members() {
		switch member {
		case "isConvertible":
			w.Line("static bool isConvertible(PyObject* pyobj);")
		case "createWrapper":
			w.Line("static PyObject* createWrapper(", createWrapperParam(spec), ");")
		case "copyCppObject":
			w.Line("static ", name, "* copyCppObject(const ", name, "& cppobj);")
		case "toPython":
			w.Line("static PyObject* toPython(const ", name, "& cppobj);")
		case "toCpp":
			w.Line("static ", name, " toCpp(PyObject* pyobj);")
		}
	}

	w.Dedent()
	w.Line("};")
}

// writeConverterImpl writes the inline member definitions. Types with a user
// conversion rule get none; the rule text provides them.
func writeConverterImpl(w *codeWriter, spec *plan.ConverterSpec, runtimeNamespace string) {
	if spec.UserRule {
		return
	}

	conv := plan.ConverterName(spec.Specialization)
	name := spec.Entry.Name

	w.Line("inline PyObject* ", conv, "::createWrapper(", createWrapperParam(spec), ")")
	w.Line("{")
	w.Indent()

	if spec.Create == plan.CreateViaEnum {
		w.Line("return ", runtimeNamespace, "::PyEnumObject_New(")
		w.Indent()
		w.Indent()
		w.Line("&", spec.TypeObject, ",")
		w.Line(`"ReturnedValue", (long) cppobj);`)
		w.Dedent()
		w.Dedent()
	} else {
		w.Line("return ", runtimeNamespace, "::PyBaseWrapper_New(&", spec.TypeObject, ", &", spec.TypeObject, ", cppobj);")
	}

	w.Dedent()
	w.Line("}")
	w.Line()

	if spec.Shape.IsConvertible {
		w.Line("inline bool ", conv, "::isConvertible(PyObject* pyobj)")
		w.Line("{")
		w.Indent()

		for i, c := range spec.Conversions {
			switch {
			case common.IsSingle(spec.Conversions):
				w.Line("return ", c.Check, "(pyobj);")
			case i == 0:
				w.Line("return ", c.Check, "(pyobj)")
			case i == len(spec.Conversions)-1:
				w.Line("    || ", c.Check, "(pyobj);")
			default:
				w.Line("    || ", c.Check, "(pyobj)")
			}
		}

		w.Dedent()
		w.Line("}")
		w.Line()
	}

	if spec.Shape.ToPython {
		w.Line("inline PyObject* ", conv, "::toPython(const ", name, "& cppobj)")
		w.Line("{")
		w.Indent()
		w.Line("return ", conv, "::createWrapper(new ", name, "(cppobj));")
		w.Dedent()
		w.Line("}")
		w.Line()
	}

	if spec.Shape.ToCpp {
		w.Line("inline ", name, " ", conv, "::toCpp(PyObject* pyobj)")
		w.Line("{")
		w.Indent()

		for i, c := range spec.Conversions {
			keyword := "if ("
			if i > 0 {
				keyword = "else if ("
			}

			w.Line(keyword, c.Check, "(pyobj))")
			w.Indent()
			w.Line("return ", name, "(", c.SourceConverter, "::toCpp(pyobj));")
			w.Dedent()
		}

		w.Line("return *", plan.ConverterName(name+"*"), "::toCpp(pyobj);")
		w.Dedent()
		w.Line("}")
		w.Line()
	}

	if spec.Shape.CopyCppObject {
		w.Line("inline ", name, "* ", conv, "::copyCppObject(const ", name, "& cppobj)")
		w.Line("{")
		w.Indent()
		w.Line("return new ", name, "(cppobj);")
		w.Dedent()
		w.Line("}")
		w.Line()
	}
}
