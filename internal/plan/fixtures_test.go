package plan

import "header-generator/internal/metamodel"

func entry(name string, cat metamodel.TypeCategory) *metamodel.TypeEntry {
	return &metamodel.TypeEntry{Name: name, Category: cat, Generate: true}
}

func ref(t *metamodel.TypeEntry) *metamodel.TypeRef {
	return &metamodel.TypeRef{Entry: t}
}

func constRef(t *metamodel.TypeEntry) *metamodel.TypeRef {
	return &metamodel.TypeRef{Entry: t, Const: true, Reference: true}
}

// ctor builds a single-argument constructor usable as an implicit conversion.
func ctor(target *metamodel.TypeEntry, src *metamodel.TypeRef) *metamodel.Function {
	return &metamodel.Function{
		Name:        target.Name,
		Constructor: true,
		Arguments:   []*metamodel.Argument{{Name: "arg", Type: src}},
	}
}

func class(name string, t *metamodel.TypeEntry) *metamodel.Class {
	return &metamodel.Class{Name: name, QualifiedName: name, Package: "sample", Entry: t}
}

// method adds a method declared and implemented on c.
func method(c *metamodel.Class, name string, ret *metamodel.TypeRef, fn func(f *metamodel.Function)) *metamodel.Function {
	f := &metamodel.Function{Name: name, Return: ret, Owner: c, Implementor: c}
	if fn != nil {
		fn(f)
	}

	c.Functions = append(c.Functions, f)

	return f
}
