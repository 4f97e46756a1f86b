package plan

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"header-generator/internal/common"
	"header-generator/internal/metamodel"
)

// InferPackage returns the package of the first class eligible for the
// module header, or "" when there is none.
func InferPackage(m metamodel.Model) string {
	for _, c := range m.Classes() {
		if isModuleClass(c) {
			return c.Package
		}
	}

	return ""
}

// isModuleClass reports whether a top-level class contributes to the module header.
func isModuleClass(c *metamodel.Class) bool {
	if !c.ShouldGenerate() || c.IsNested() {
		return false
	}

	switch c.Entry.Category {
	case metamodel.CategoryNamespace, metamodel.CategoryValue, metamodel.CategoryObject:
		return true
	default:
		return false
	}
}

// moduleBuilder accumulates one BuildModule pass.
type moduleBuilder struct {
	model         metamodel.Model
	plan          *ModulePlan
	classIncludes common.OrderedSet[metamodel.Include]
	enumIncludes  common.OrderedSet[string]
}

// BuildModule walks global enums, then classes in metamodel order, and
// decides every umbrella-header contribution. packageName is recorded as
// given; it is never inferred here.
func BuildModule(m metamodel.Model, packageName string) (*ModulePlan, error) {
	b := &moduleBuilder{
		model: m,
		plan:  &ModulePlan{Package: packageName},
	}

	for _, e := range m.GlobalEnums() {
		if err := b.addGlobalEnum(e); err != nil {
			return nil, err
		}
	}

	for _, c := range m.Classes() {
		if !isModuleClass(c) {
			continue
		}

		b.addInclude(c)

		if err := b.addClass(c, EntryClass); err != nil {
			return nil, errors.Wrapf(err, "class %s", c.QualifiedName)
		}
	}

	b.plan.ClassIncludes = b.classIncludes.Items()
	b.plan.EnumIncludes = b.enumIncludes.Items()
	b.plan.PrimitiveIncludes = validIncludes(m.PrimitiveTypes())
	b.plan.ContainerIncludes = validIncludes(m.ContainerTypes())

	for _, t := range m.TypeEntries() {
		if t.HasConversionRule() {
			b.plan.ConversionRules = append(b.plan.ConversionRules, t)
		}
	}

	return b.plan, nil
}

func (b *moduleBuilder) addGlobalEnum(e *metamodel.Enum) error {
	if hasFileName(e.IncludeFile) {
		b.enumIncludes.Add(e.IncludeFile)
	} else {
		b.plan.Diagnostics.AddInfo("missing_include", "global enum has no include file", e.Name)
	}

	return b.addEnum(e, EntryGlobalEnum)
}

func (b *moduleBuilder) addEnum(e *metamodel.Enum, kind EntryKind) error {
	if e.Entry == nil {
		return errors.Wrapf(ErrContractViolation, "enum %q has no type entry", e.Name)
	}

	conv, err := b.converter(e.Entry)
	if err != nil {
		return err
	}

	b.plan.Entries = append(b.plan.Entries, ModuleEntry{
		Kind:      kind,
		Entry:     e.Entry,
		TypeCheck: true,
		Converter: conv,
	})

	if e.Entry.Flags == nil {
		return nil
	}

	flagsConv, err := b.converter(e.Entry.Flags)
	if err != nil {
		return err
	}

	b.plan.Entries = append(b.plan.Entries, ModuleEntry{
		Kind:      EntryFlags,
		Entry:     e.Entry.Flags,
		Converter: flagsConv,
	})

	return nil
}

// addClass adds the member enums, then the inner classes (depth first), then
// the class itself unless it is a namespace.
func (b *moduleBuilder) addClass(c *metamodel.Class, kind EntryKind) error {
	for _, e := range c.Enums {
		if err := b.addEnum(e, EntryClassEnum); err != nil {
			return errors.Wrapf(err, "enum %s", e.Name)
		}
	}

	for _, inner := range c.InnerClasses {
		if !inner.ShouldGenerate() {
			continue
		}

		b.addInclude(inner)

		if err := b.addClass(inner, EntryInnerClass); err != nil {
			return errors.Wrapf(err, "inner class %s", inner.QualifiedName)
		}
	}

	if c.IsNamespace() {
		return nil
	}

	conv, err := b.converter(c.Entry)
	if err != nil {
		return err
	}

	b.plan.Entries = append(b.plan.Entries, ModuleEntry{
		Kind:      kind,
		Entry:     c.Entry,
		Class:     c,
		NewFunc:   true,
		TypeCheck: true,
		CptrMacro: kind == EntryClass,
		Converter: conv,
	})

	return nil
}

func (b *moduleBuilder) addInclude(c *metamodel.Class) {
	if c.Entry.Include.IsValid() {
		b.classIncludes.Add(c.Entry.Include)
		return
	}

	b.plan.Diagnostics.AddInfo("missing_include",
		fmt.Sprintf("%s has no include file", c.Entry.Category), c.QualifiedName)
}

func (b *moduleBuilder) converter(t *metamodel.TypeEntry) (*ConverterSpec, error) {
	cls := b.model.FindClass(t.Name)
	abstract := cls != nil && cls.Abstract

	return RequiredMembers(t, usableConversions(b.model.ImplicitConversions(t)), abstract)
}

// usableConversions drops conversions removed from the binding surface; a
// removed constructor cannot be called by generated code.
func usableConversions(all []*metamodel.Function) []*metamodel.Function {
	out := make([]*metamodel.Function, 0, len(all))

	for _, fn := range all {
		if !fn.ModifiedRemoved {
			out = append(out, fn)
		}
	}

	return out
}

// hasFileName reports whether an include path ends in a file name.
func hasFileName(p string) bool {
	p = filepath.ToSlash(p)

	return p != "" && !strings.HasSuffix(p, "/")
}

func validIncludes(entries []*metamodel.TypeEntry) []metamodel.Include {
	var set common.OrderedSet[metamodel.Include]

	for _, t := range entries {
		if t.Include.IsValid() {
			set.Add(t.Include)
		}
	}

	return set.Items()
}
