package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"header-generator/internal/metamodel"
	"header-generator/internal/plan"
)

func pointSpec(t *testing.T, g *geometry) *plan.ConverterSpec {
	t.Helper()

	entry := g.point.Entry
	spec, err := plan.RequiredMembers(entry, g.model.ImplicitConversions(entry), false)
	require.NoError(t, err)

	return spec
}

func TestWriteTypeCheck(t *testing.T) {
	var w codeWriter

	writeTypeCheck(&w, newEntry("Point", metamodel.CategoryValue, ""))

	assert.Equal(t, `PyAPI_DATA(PyTypeObject) PyPoint_Type;
#define PyPoint_Check(op) PyObject_TypeCheck(op, &PyPoint_Type)
#define PyPoint_CheckExact(op) ((op)->ob_type == &PyPoint_Type)
`, w.String())
}

func TestWriteConverterDecl_ValueWithConversions(t *testing.T) {
	var w codeWriter

	writeConverterDecl(&w, pointSpec(t, sampleGeometry()))

	assert.Equal(t, `template<>
struct Converter<Point > : ConverterBase<Point >
{
    static bool isConvertible(PyObject* pyobj);
    static PyObject* createWrapper(const Point* cppobj);
    static Point* copyCppObject(const Point& cppobj);
    static PyObject* toPython(const Point& cppobj);
    static Point toCpp(PyObject* pyobj);
};
`, w.String())
}

func TestWriteConverterImpl_ValueWithConversions(t *testing.T) {
	var w codeWriter

	writeConverterImpl(&w, pointSpec(t, sampleGeometry()), "Shiboken")

	assert.Equal(t, `inline PyObject* Converter<Point >::createWrapper(const Point* cppobj)
{
    return Shiboken::PyBaseWrapper_New(&PyPoint_Type, &PyPoint_Type, cppobj);
}

inline bool Converter<Point >::isConvertible(PyObject* pyobj)
{
    return PyInt_Check(pyobj)
        || PySize_Check(pyobj);
}

inline PyObject* Converter<Point >::toPython(const Point& cppobj)
{
    return Converter<Point >::createWrapper(new Point(cppobj));
}

inline Point Converter<Point >::toCpp(PyObject* pyobj)
{
    if (PyInt_Check(pyobj))
        return Point(Converter<int >::toCpp(pyobj));
    else if (PySize_Check(pyobj))
        return Point(Converter<Size >::toCpp(pyobj));
    return *Converter<Point* >::toCpp(pyobj);
}

inline Point* Converter<Point >::copyCppObject(const Point& cppobj)
{
    return new Point(cppobj);
}

`, w.String())
}

func TestWriteConverter_Enum(t *testing.T) {
	spec, err := plan.RequiredMembers(newEntry("Color", metamodel.CategoryEnum, ""), nil, false)
	require.NoError(t, err)

	var decl, impl codeWriter

	writeConverterDecl(&decl, spec)
	writeConverterImpl(&impl, spec, "Shiboken")

	assert.Equal(t, `template<>
struct Converter<Color > : Converter_CppEnum<Color >
{
    static PyObject* createWrapper(Color cppobj);
};
`, decl.String())

	assert.Equal(t, `inline PyObject* Converter<Color >::createWrapper(Color cppobj)
{
    return Shiboken::PyEnumObject_New(
            &PyColor_Type,
            "ReturnedValue", (long) cppobj);
}

`, impl.String())
}

func TestWriteConverter_ObjectIsPointerSpecialized(t *testing.T) {
	spec, err := plan.RequiredMembers(newEntry("Shape", metamodel.CategoryObject, ""), nil, false)
	require.NoError(t, err)

	var decl, impl codeWriter

	writeConverterDecl(&decl, spec)
	writeConverterImpl(&impl, spec, "Runtime")

	assert.Contains(t, decl.String(), "struct Converter<Shape* > : ConverterBase<Shape* >\n")
	assert.Contains(t, decl.String(), "static PyObject* createWrapper(const Shape* cppobj);")
	assert.NotContains(t, decl.String(), "toPython")
	assert.Contains(t, impl.String(), "inline PyObject* Converter<Shape* >::createWrapper(const Shape* cppobj)\n")
	assert.Contains(t, impl.String(), "return Runtime::PyBaseWrapper_New(&PyShape_Type, &PyShape_Type, cppobj);")
}

func TestWriteConverter_SingleConversion(t *testing.T) {
	g := sampleGeometry()
	entry := g.point.Entry
	convs := g.model.ImplicitConversions(entry)[:1]

	spec, err := plan.RequiredMembers(entry, convs, false)
	require.NoError(t, err)

	var impl codeWriter

	writeConverterImpl(&impl, spec, "Shiboken")

	assert.Contains(t, impl.String(), "{\n    return PyInt_Check(pyobj);\n}\n")
	assert.Contains(t, impl.String(), "    if (PyInt_Check(pyobj))\n        return Point(Converter<int >::toCpp(pyobj));\n    return *Converter<Point* >::toCpp(pyobj);\n")
}

func TestWriteConverterImpl_UserRuleSuppressesImplementation(t *testing.T) {
	entry := newEntry("Point", metamodel.CategoryValue, "")
	entry.ConversionRule = "// hand written\n"

	spec, err := plan.RequiredMembers(entry, nil, false)
	require.NoError(t, err)

	var decl, impl codeWriter

	writeConverterDecl(&decl, spec)
	writeConverterImpl(&impl, spec, "Shiboken")

	assert.Contains(t, decl.String(), "struct Converter<Point >")
	assert.Empty(t, impl.String())
}
