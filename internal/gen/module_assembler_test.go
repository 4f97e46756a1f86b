package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"header-generator/internal/metamodel"
	"header-generator/internal/plan"
)

// assertInOrder checks that every part occurs in text after the previous one.
func assertInOrder(t *testing.T, text string, parts ...string) {
	t.Helper()

	rest := text
	for _, p := range parts {
		i := strings.Index(rest, p)
		if !assert.GreaterOrEqual(t, i, 0, "missing or out of order: %q", p) {
			return
		}

		rest = rest[i+len(p):]
	}
}

func assembleSample(t *testing.T, g *geometry, cfg Config) string {
	t.Helper()

	mp, err := plan.BuildModule(g.model, "sample")
	require.NoError(t, err)

	return AssembleModule(mp, "sample", cfg)
}

func TestAssembleModule_Layout(t *testing.T) {
	text := assembleSample(t, sampleGeometry(), DefaultConfig())

	assert.True(t, strings.HasPrefix(text, "#ifndef SAMPLE_PYTHON_H\n#define SAMPLE_PYTHON_H\n\n#include <Python.h>\n"))
	assert.True(t, strings.HasSuffix(text, "} // namespace Shiboken\n\n#endif // SAMPLE_PYTHON_H\n"))

	assertInOrder(t, text,
		"#include <bindingmanager.h>\n\n#include <memory>\n\n",
		"// Class Includes\n#include <point.h>\n#include <shape.h>\n#include <geometry.h>\n\n",
		"// Enum Includes\n#include <color.h>\n\n",
		"// Conversion Includes - Primitive Types\n#include \"conv_int.h\"\n\n",
		"extern \"C\"\n{\n\n// Global enums\n",
		"} // extern \"C\"\n\nnamespace Shiboken\n{\n\n",
		"// Generated converters declarations ----------------------------------\n\n",
		"// User defined converters --------------------------------------------\n",
		"// Generated converters implementations -------------------------------\n\n",
		"} // namespace Shiboken\n",
	)

	assert.NotContains(t, text, "// Conversion Includes - Container Types")
}

func TestAssembleModule_RegistrationBlock(t *testing.T) {
	text := assembleSample(t, sampleGeometry(), DefaultConfig())

	assert.Contains(t, text, `// Global enums
PyAPI_DATA(PyTypeObject) PyColor_Type;
#define PyColor_Check(op) PyObject_TypeCheck(op, &PyColor_Type)
#define PyColor_CheckExact(op) ((op)->ob_type == &PyColor_Type)

PyAPI_FUNC(PyObject*) PyPoint_New(PyTypeObject* type, PyObject* args, PyObject* kwds);
PyAPI_DATA(PyTypeObject) PyPoint_Type;
#define PyPoint_Check(op) PyObject_TypeCheck(op, &PyPoint_Type)
#define PyPoint_CheckExact(op) ((op)->ob_type == &PyPoint_Type)
#define PyPoint_cptr(pyobj) ((Point*)PyBaseWrapper_cptr(pyobj))

PyAPI_FUNC(PyObject*) PyShape_New(PyTypeObject* type, PyObject* args, PyObject* kwds);
`)

	// namespaces contribute an include only
	assert.NotContains(t, text, "PyGeometry")
	// flags get a converter but no type check macro
	assert.NotContains(t, text, "PyColors_Type;")
	assert.Contains(t, text, "struct Converter<Colors > : Converter_CppEnum<Colors >")
}

func TestAssembleModule_ConverterOrder(t *testing.T) {
	text := assembleSample(t, sampleGeometry(), DefaultConfig())

	assertInOrder(t, text,
		"struct Converter<Color >",
		"struct Converter<Colors >",
		"struct Converter<Point >",
		"struct Converter<Shape* >",
		"// User defined converters",
		"inline PyObject* Converter<Color >::createWrapper",
		"inline PyObject* Converter<Colors >::createWrapper",
		"inline PyObject* Converter<Point >::createWrapper",
		"inline PyObject* Converter<Shape* >::createWrapper",
	)
}

func TestAssembleModule_UserConversionRules(t *testing.T) {
	g := sampleGeometry()
	g.point.Entry.ConversionRule = "// Point by hand\ninline Point* Converter<Point >::copyCppObject(const Point& cppobj);\n"

	text := assembleSample(t, g, DefaultConfig())

	assert.Contains(t, text, "// User defined converters --------------------------------------------\n"+
		"// Conversion rule for: Point\n// Point by hand\n")
	assert.Equal(t, 1, strings.Count(text, "// Point by hand"))
	// declaration stays, generated implementation goes
	assert.Contains(t, text, "struct Converter<Point >")
	assert.NotContains(t, text, "inline PyObject* Converter<Point >::createWrapper")
}

func TestAssembleModule_LicenseAndNamespace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.License = "/* sample license */\n"
	cfg.RuntimeNamespace = "Binding"

	text := assembleSample(t, sampleGeometry(), cfg)

	assert.True(t, strings.HasPrefix(text, "/* sample license */\n\n#ifndef SAMPLE_PYTHON_H\n"))
	assert.Contains(t, text, "namespace Binding\n{\n")
	assert.Contains(t, text, "} // namespace Binding\n")
	assert.Contains(t, text, "return Binding::PyEnumObject_New(")
}

func TestAssembleModule_InnerClassesAndContainers(t *testing.T) {
	g := sampleGeometry()

	vertexT := newEntry("Shape::Vertex", metamodel.CategoryValue, "shape.h")
	vertex := &metamodel.Class{
		Name: "Vertex", QualifiedName: "Shape::Vertex", Package: "sample",
		Entry: vertexT, Enclosing: g.shape,
	}
	g.shape.InnerClasses = []*metamodel.Class{vertex}
	g.model.AddTypeEntry(vertexT)
	g.model.AddClass(vertex)
	g.model.AddTypeEntry(&metamodel.TypeEntry{
		Name: "std::list", Category: metamodel.CategoryContainer, Include: metamodel.Include{File: "list"},
	})

	text := assembleSample(t, g, DefaultConfig())

	assert.Equal(t, 1, strings.Count(text, "#include <shape.h>"))
	assert.Contains(t, text, "// Conversion Includes - Container Types\n#include <list>\n\n")
	assertInOrder(t, text,
		"PyAPI_FUNC(PyObject*) PyShape_Vertex_New(",
		"#define PyShape_Vertex_CheckExact(op) ((op)->ob_type == &PyShape_Vertex_Type)\n\n",
		"PyAPI_FUNC(PyObject*) PyShape_New(",
	)
	assert.NotContains(t, text, "PyShape_Vertex_cptr")
	assert.Contains(t, text, "struct Converter<Shape::Vertex > : ConverterBase<Shape::Vertex >")
}

func TestModuleGuard(t *testing.T) {
	assert.Equal(t, "SAMPLE_PYTHON_H", ModuleGuard("sample"))
	assert.Equal(t, "SAMPLE_PYTHON_H", ModuleGuard("Sample"))
}
