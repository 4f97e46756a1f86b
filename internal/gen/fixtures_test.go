package gen

import "header-generator/internal/metamodel"

// geometry holds the sample module used across gen tests.
type geometry struct {
	model  *metamodel.Snapshot
	point  *metamodel.Class
	shape  *metamodel.Class
	geo    *metamodel.Class
	intT   *metamodel.TypeEntry
	sizeT  *metamodel.TypeEntry
	colorT *metamodel.TypeEntry
}

func newEntry(name string, cat metamodel.TypeCategory, include string) *metamodel.TypeEntry {
	t := &metamodel.TypeEntry{Name: name, Category: cat, Generate: true}
	if include != "" {
		t.Include = metamodel.Include{File: include}
	}

	return t
}

func newClass(name string, t *metamodel.TypeEntry) *metamodel.Class {
	return &metamodel.Class{Name: name, QualifiedName: name, Package: "sample", Entry: t}
}

// sampleGeometry builds: global enum Color with flags Colors; value Point
// convertible from int and Size; object Shape with a constructor, a virtual
// override, a removed abstract method and a plain method; namespace Geometry.
func sampleGeometry() *geometry {
	g := &geometry{model: metamodel.NewSnapshot()}

	g.intT = &metamodel.TypeEntry{
		Name: "int", Category: metamodel.CategoryPrimitive, TargetName: "PyInt",
		Include: metamodel.Include{File: "conv_int.h", Local: true},
	}
	doubleT := &metamodel.TypeEntry{Name: "double", Category: metamodel.CategoryPrimitive, TargetName: "PyFloat"}
	g.sizeT = newEntry("Size", metamodel.CategoryValue, "size.h")
	g.sizeT.Generate = false

	colorsT := newEntry("Colors", metamodel.CategoryFlags, "")
	g.colorT = newEntry("Color", metamodel.CategoryEnum, "")
	g.colorT.Flags = colorsT

	pointT := newEntry("Point", metamodel.CategoryValue, "point.h")
	shapeT := newEntry("Shape", metamodel.CategoryObject, "shape.h")
	shapeT.QObject = true
	geoT := newEntry("Geometry", metamodel.CategoryNamespace, "geometry.h")

	for _, t := range []*metamodel.TypeEntry{g.intT, doubleT, g.sizeT, g.colorT, colorsT, pointT, shapeT, geoT} {
		g.model.AddTypeEntry(t)
	}

	g.model.AddGlobalEnum(&metamodel.Enum{Name: "Color", Entry: g.colorT, IncludeFile: "color.h"})

	g.point = newClass("Point", pointT)
	g.point.CloneOperator = true
	g.model.AddClass(g.point)

	for _, src := range []*metamodel.TypeRef{
		{Entry: g.intT},
		{Entry: g.sizeT, Const: true, Reference: true},
	} {
		g.model.AddImplicitConversion(pointT, &metamodel.Function{
			Name: "Point", Constructor: true, Owner: g.point, Implementor: g.point,
			Arguments: []*metamodel.Argument{{Name: "v", Type: src}},
		})
	}

	g.shape = newClass("Shape", shapeT)
	g.shape.CloneOperator = true
	double := &metamodel.TypeRef{Entry: doubleT}
	g.shape.Functions = []*metamodel.Function{
		{
			Name: "Shape", Constructor: true,
			Arguments: []*metamodel.Argument{{Name: "sides", Type: &metamodel.TypeRef{Entry: g.intT}}},
		},
		{Name: "area", Return: double, Virtual: true, Const: true},
		{
			Name: "perimeter", Return: double, Virtual: true, Abstract: true, ModifiedRemoved: true,
			Arguments: []*metamodel.Argument{{Name: "scale", Type: &metamodel.TypeRef{Entry: g.intT}, DefaultValue: "1"}},
		},
		{Name: "id", Return: &metamodel.TypeRef{Entry: g.intT}},
	}

	for _, fn := range g.shape.Functions {
		fn.Owner = g.shape
		fn.Implementor = g.shape
	}

	g.model.AddClass(g.shape)

	g.geo = newClass("Geometry", geoT)
	g.model.AddClass(g.geo)

	return g
}
