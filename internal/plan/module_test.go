package plan

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"header-generator/internal/metamodel"
)

// sampleModel builds a small geometry module: a global enum with flags, a
// value type with implicit conversions, an abstract object type with a
// member enum and an inner class, and a namespace.
func sampleModel() *metamodel.Snapshot {
	s := metamodel.NewSnapshot()

	intT := &metamodel.TypeEntry{
		Name: "int", Category: metamodel.CategoryPrimitive, TargetName: "PyInt",
		Include: metamodel.Include{File: "conv_int.h"},
	}
	doubleT := &metamodel.TypeEntry{Name: "double", Category: metamodel.CategoryPrimitive, TargetName: "PyFloat"}
	listT := &metamodel.TypeEntry{
		Name: "std::list", Category: metamodel.CategoryContainer,
		Include: metamodel.Include{File: "list"},
	}

	colorsT := entry("Colors", metamodel.CategoryFlags)
	colorT := entry("Color", metamodel.CategoryEnum)
	colorT.Flags = colorsT

	pointT := entry("Point", metamodel.CategoryValue)
	pointT.Include = metamodel.Include{File: "point.h"}
	pointT.ConversionRule = "// Point rule\n"

	shapeT := entry("Shape", metamodel.CategoryObject)
	shapeT.Include = metamodel.Include{File: "shape.h"}
	kindT := entry("Shape::Kind", metamodel.CategoryEnum)
	vertexT := entry("Shape::Vertex", metamodel.CategoryValue)
	vertexT.Include = metamodel.Include{File: "shape.h"}

	geoT := entry("Geometry", metamodel.CategoryNamespace)
	geoT.Include = metamodel.Include{File: "geometry.h"}

	for _, t := range []*metamodel.TypeEntry{intT, doubleT, listT, colorT, colorsT, pointT, shapeT, kindT, vertexT, geoT} {
		s.AddTypeEntry(t)
	}

	s.AddGlobalEnum(&metamodel.Enum{Name: "Color", Entry: colorT, IncludeFile: "color.h"})
	s.AddGlobalEnum(&metamodel.Enum{Name: "Color2", Entry: entry("Color2", metamodel.CategoryEnum), IncludeFile: "color.h"})

	point := class("Point", pointT)
	s.AddClass(point)
	s.AddImplicitConversion(pointT, ctor(pointT, ref(intT)))

	removed := ctor(pointT, ref(doubleT))
	removed.ModifiedRemoved = true
	s.AddImplicitConversion(pointT, removed)

	shape := class("Shape", shapeT)
	shape.Abstract = true
	shape.Enums = []*metamodel.Enum{{Name: "Kind", Entry: kindT, Enclosing: shape}}
	vertex := &metamodel.Class{
		Name: "Vertex", QualifiedName: "Shape::Vertex", Package: "sample",
		Entry: vertexT, Enclosing: shape,
	}
	shape.InnerClasses = []*metamodel.Class{vertex}
	s.AddClass(shape)
	s.AddClass(vertex)

	geo := class("Geometry", geoT)
	s.AddClass(geo)

	return s
}

func TestBuildModule_EntryOrder(t *testing.T) {
	mp, err := BuildModule(sampleModel(), "sample")
	require.NoError(t, err)

	type row struct {
		kind EntryKind
		name string
	}

	var got []row
	for _, e := range mp.Entries {
		got = append(got, row{e.Kind, e.Entry.Name})
	}

	assert.Equal(t, []row{
		{EntryGlobalEnum, "Color"},
		{EntryFlags, "Colors"},
		{EntryGlobalEnum, "Color2"},
		{EntryClass, "Point"},
		{EntryClassEnum, "Shape::Kind"},
		{EntryInnerClass, "Shape::Vertex"},
		{EntryClass, "Shape"},
	}, got)

	assert.Equal(t, "sample", mp.Package)
}

func TestBuildModule_EntryFlags(t *testing.T) {
	mp, err := BuildModule(sampleModel(), "sample")
	require.NoError(t, err)

	byName := make(map[string]ModuleEntry)
	for _, e := range mp.Entries {
		byName[e.Entry.Name] = e
	}

	assert.True(t, byName["Color"].TypeCheck)
	assert.False(t, byName["Color"].NewFunc)
	assert.False(t, byName["Colors"].TypeCheck)
	assert.NotNil(t, byName["Colors"].Converter)

	assert.True(t, byName["Shape"].NewFunc)
	assert.True(t, byName["Shape"].CptrMacro)
	assert.True(t, byName["Shape::Vertex"].NewFunc)
	assert.False(t, byName["Shape::Vertex"].CptrMacro)

	// abstract classes get a pointer specialization
	assert.Equal(t, "Shape*", byName["Shape"].Converter.Specialization)
}

func TestBuildModule_RemovedConversionsAreDropped(t *testing.T) {
	mp, err := BuildModule(sampleModel(), "sample")
	require.NoError(t, err)

	var point *ConverterSpec
	for _, c := range mp.Converters() {
		if c.Entry.Name == "Point" {
			point = c
		}
	}

	require.NotNil(t, point)
	require.Len(t, point.Conversions, 1)
	assert.Equal(t, "PyInt_Check", point.Conversions[0].Check)
	assert.True(t, point.Shape.ToCpp)
	assert.True(t, point.UserRule)
}

func TestBuildModule_Includes(t *testing.T) {
	mp, err := BuildModule(sampleModel(), "sample")
	require.NoError(t, err)

	assert.Equal(t, []metamodel.Include{
		{File: "point.h"},
		{File: "shape.h"},
		{File: "geometry.h"},
	}, mp.ClassIncludes)
	assert.Equal(t, []string{"color.h"}, mp.EnumIncludes)
	assert.Equal(t, []metamodel.Include{{File: "conv_int.h"}}, mp.PrimitiveIncludes)
	assert.Equal(t, []metamodel.Include{{File: "list"}}, mp.ContainerIncludes)

	require.Len(t, mp.ConversionRules, 1)
	assert.Equal(t, "Point", mp.ConversionRules[0].Name)
}

func TestBuildModule_MissingIncludesAreReported(t *testing.T) {
	s := metamodel.NewSnapshot()
	bare := entry("Bare", metamodel.CategoryValue)
	s.AddTypeEntry(bare)
	s.AddClass(class("Bare", bare))
	s.AddGlobalEnum(&metamodel.Enum{Name: "Mode", Entry: entry("Mode", metamodel.CategoryEnum), IncludeFile: "include/"})

	mp, err := BuildModule(s, "sample")
	require.NoError(t, err)

	assert.Empty(t, mp.ClassIncludes)
	assert.Empty(t, mp.EnumIncludes)
	require.Len(t, mp.Diagnostics.Infos, 2)
	assert.Equal(t, "missing_include", mp.Diagnostics.Infos[0].Code)
	assert.Equal(t, "Mode", mp.Diagnostics.Infos[0].Entity)
	assert.Equal(t, "Bare", mp.Diagnostics.Infos[1].Entity)
	assert.False(t, mp.Diagnostics.HasErrors())
}

func TestBuildModule_SkipsForeignAndNestedClasses(t *testing.T) {
	s := sampleModel()
	foreign := entry("Foreign", metamodel.CategoryValue)
	foreign.Generate = false
	s.AddTypeEntry(foreign)
	s.AddClass(class("Foreign", foreign))

	mp, err := BuildModule(s, "sample")
	require.NoError(t, err)

	for _, e := range mp.Entries {
		assert.NotEqual(t, "Foreign", e.Entry.Name)
	}

	// Shape::Vertex is in Classes() but only reached through Shape
	count := 0
	for _, e := range mp.Entries {
		if e.Entry.Name == "Shape::Vertex" {
			count++
		}
	}

	assert.Equal(t, 1, count)
}

func TestBuildModule_EnumWithoutEntryIsContractViolation(t *testing.T) {
	s := metamodel.NewSnapshot()
	s.AddGlobalEnum(&metamodel.Enum{Name: "Broken", IncludeFile: "broken.h"})

	_, err := BuildModule(s, "sample")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContractViolation))
}

func TestBuildModule_EmptyModel(t *testing.T) {
	mp, err := BuildModule(metamodel.NewSnapshot(), "empty")
	require.NoError(t, err)

	assert.Empty(t, mp.Entries)
	assert.Empty(t, mp.Converters())
	assert.Empty(t, mp.Diagnostics.All())
}

func TestInferPackage(t *testing.T) {
	assert.Equal(t, "sample", InferPackage(sampleModel()))
	assert.Empty(t, InferPackage(metamodel.NewSnapshot()))
}
