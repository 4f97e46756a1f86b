package typesystem

import (
	"fmt"
	"strings"

	"header-generator/internal/common"
	"header-generator/internal/diagnostic"
	"header-generator/internal/match"
	"header-generator/internal/metamodel"
)

const maxSuggestions = 3

var classKinds = []string{"value", "object", "namespace"}

// pendingClass is a registered class whose members resolve in the second pass.
type pendingClass struct {
	class *metamodel.Class
	def   *ClassDef
}

// builder accumulates one Build pass.
type builder struct {
	doc     *Document
	snap    *metamodel.Snapshot
	diags   diagnostic.Diagnostics
	void    *metamodel.TypeEntry
	pending []pendingClass
}

// Build turns a document into a snapshot. Every type name is registered
// before any function is resolved, so declaration order inside the document
// does not matter. A class is abstract when the document says so or any of
// its functions is abstract.
func Build(doc *Document) (*metamodel.Snapshot, diagnostic.Diagnostics) {
	b := &builder{
		doc:  doc,
		snap: metamodel.NewSnapshot(),
		void: &metamodel.TypeEntry{Name: "void", Category: metamodel.CategoryPrimitive},
	}

	for _, def := range doc.Primitives {
		b.registerType(def, metamodel.CategoryPrimitive)
	}

	for _, def := range doc.Containers {
		b.registerType(def, metamodel.CategoryContainer)
	}

	for i := range doc.Enums {
		if e := b.registerEnum(&doc.Enums[i], nil); e != nil {
			e.IncludeFile = doc.Enums[i].Include
			b.snap.AddGlobalEnum(e)
		}
	}

	for i := range doc.Classes {
		b.registerClass(&doc.Classes[i], nil)
	}

	for _, rule := range doc.Rules {
		b.attachRule(rule)
	}

	for _, p := range b.pending {
		b.resolveMembers(p.class, p.def)
	}

	return b.snap, b.diags
}

func (b *builder) addEntry(t *metamodel.TypeEntry) bool {
	if t.Name == "" {
		b.diags.AddError("missing_name", fmt.Sprintf("%s type without a name", t.Category), "")
		return false
	}

	if !b.snap.AddTypeEntry(t) {
		b.diags.AddError("duplicate_type", fmt.Sprintf("type %q is declared more than once", t.Name), t.Name)
		return false
	}

	return true
}

func (b *builder) registerType(def TypeDef, cat metamodel.TypeCategory) {
	file, local := parseInclude(def.Include)

	b.addEntry(&metamodel.TypeEntry{
		Name:       def.Name,
		Category:   cat,
		TargetName: def.Target,
		Include:    metamodel.Include{File: file, Local: local},
		Generate:   true,
	})
}

// registerEnum registers an enum entry and its flags entry in the scope of
// enclosing (nil for global enums).
func (b *builder) registerEnum(def *EnumDef, enclosing *metamodel.Class) *metamodel.Enum {
	scope := ""
	if enclosing != nil {
		scope = enclosing.QualifiedName
	}

	entry := &metamodel.TypeEntry{
		Name:     qualify(scope, def.Name),
		Category: metamodel.CategoryEnum,
		Generate: generateFlag(def.Generate),
	}

	if !b.addEntry(entry) {
		return nil
	}

	if def.Flags != "" {
		flags := &metamodel.TypeEntry{
			Name:     qualify(scope, def.Flags),
			Category: metamodel.CategoryFlags,
			Generate: entry.Generate,
		}

		if b.addEntry(flags) {
			entry.Flags = flags
		}
	}

	return &metamodel.Enum{Name: def.Name, Entry: entry, Enclosing: enclosing}
}

func (b *builder) registerClass(def *ClassDef, enclosing *metamodel.Class) *metamodel.Class {
	scope := ""
	pkg := b.doc.Package

	if enclosing != nil {
		scope = enclosing.QualifiedName
		pkg = enclosing.Package
	}

	if def.Package != "" {
		pkg = def.Package
	}

	qualified := qualify(scope, def.Name)

	cat := metamodel.ParseCategory(def.Kind)
	switch cat {
	case metamodel.CategoryValue, metamodel.CategoryObject, metamodel.CategoryNamespace:
	default:
		b.diags.AddError("invalid_kind",
			fmt.Sprintf("class kind %q must be one of %s", def.Kind, strings.Join(classKinds, ", ")),
			qualified, match.Suggest(def.Kind, classKinds, 1)...)

		return nil
	}

	file, local := parseInclude(def.Include)

	entry := &metamodel.TypeEntry{
		Name:     qualified,
		Category: cat,
		Include:  metamodel.Include{File: file, Local: local},
		HeldType: def.HeldType,
		QObject:  def.QObject,
		Generate: generateFlag(def.Generate),
	}

	for _, s := range def.Snips {
		snip, ok := b.snip(s, qualified)
		if ok {
			entry.CodeSnips = append(entry.CodeSnips, snip)
		}
	}

	if !b.addEntry(entry) {
		return nil
	}

	c := &metamodel.Class{
		Name:              def.Name,
		QualifiedName:     qualified,
		Package:           pkg,
		Entry:             entry,
		Abstract:          def.Abstract,
		QObject:           def.QObject,
		PrivateDestructor: def.PrivateDestructor,
		CloneOperator:     def.Clone,
		Enclosing:         enclosing,
	}

	b.snap.AddClass(c)
	b.pending = append(b.pending, pendingClass{class: c, def: def})

	for i := range def.Enums {
		if e := b.registerEnum(&def.Enums[i], c); e != nil {
			c.Enums = append(c.Enums, e)
		}
	}

	for i := range def.Classes {
		if inner := b.registerClass(&def.Classes[i], c); inner != nil {
			c.InnerClasses = append(c.InnerClasses, inner)
		}
	}

	return c
}

func (b *builder) snip(def SnipDef, entity string) (metamodel.CodeSnip, bool) {
	var snip metamodel.CodeSnip

	switch strings.ToLower(def.Position) {
	case metamodel.SnipDeclaration.String():
		snip.Position = metamodel.SnipDeclaration
	case metamodel.SnipPrototypeInitialization.String():
		snip.Position = metamodel.SnipPrototypeInitialization
	default:
		b.diags.AddError("invalid_snip_position", fmt.Sprintf("unknown snippet position %q", def.Position), entity,
			match.Suggest(def.Position, []string{
				metamodel.SnipDeclaration.String(),
				metamodel.SnipPrototypeInitialization.String(),
			}, 1)...)

		return snip, false
	}

	switch strings.ToLower(def.Language) {
	case "native":
		snip.Language = metamodel.SnipNative
	case "target":
		snip.Language = metamodel.SnipTarget
	default:
		b.diags.AddError("invalid_snip_language", fmt.Sprintf("unknown snippet language %q", def.Language), entity)
		return snip, false
	}

	snip.Code = def.Code

	return snip, true
}

func (b *builder) attachRule(rule ConversionDef) {
	t := b.snap.TypeEntry(rule.Type)
	if t == nil {
		b.diags.AddError("unknown_type", fmt.Sprintf("conversion rule for unknown type %q", rule.Type),
			rule.Type, b.suggestTypes(rule.Type)...)

		return
	}

	if t.Category == metamodel.CategoryPrimitive || t.Category == metamodel.CategoryContainer {
		b.diags.AddWarning("rule_not_emitted",
			fmt.Sprintf("%s types get no converter, the rule is still placed in the module header", t.Category),
			t.Name)
	}

	t.ConversionRule = rule.Code
}

func (b *builder) resolveMembers(c *metamodel.Class, def *ClassDef) {
	var implicit []*metamodel.Function

	for i := range def.Functions {
		fd := &def.Functions[i]

		fn, ok := b.function(c, fd)
		if !ok {
			continue
		}

		if fn.Abstract {
			c.Abstract = true
		}

		c.Functions = append(c.Functions, fn)

		if !fd.Implicit {
			continue
		}

		if !fn.Constructor || common.IsEmpty(fn.Arguments) {
			b.diags.AddError("invalid_implicit_conversion",
				fmt.Sprintf("%s: only constructors with an argument convert implicitly", fn.Name),
				c.QualifiedName)

			continue
		}

		implicit = append(implicit, fn)
	}

	// An abstract value type cannot be constructed from its sources.
	if c.Abstract && c.Entry.IsValue() && !common.IsEmpty(implicit) {
		b.diags.AddError("invalid_implicit_conversion",
			"abstract value types cannot convert implicitly; make the class an object type or drop 'implicit'",
			c.QualifiedName)

		return
	}

	for _, fn := range implicit {
		b.snap.AddImplicitConversion(c.Entry, fn)
	}
}

func (b *builder) function(c *metamodel.Class, fd *FunctionDef) (*metamodel.Function, bool) {
	entity := c.QualifiedName + "::" + fd.Name

	fn := &metamodel.Function{
		Name:            fd.Name,
		Constructor:     fd.Constructor || fd.CopyConstructor,
		CopyConstructor: fd.CopyConstructor,
		Abstract:        fd.Abstract,
		Virtual:         fd.Virtual,
		Private:         fd.Private,
		Const:           fd.Const,
		ModifiedRemoved: fd.Removed,
		Owner:           c,
		Implementor:     c,
	}

	if fd.ImplementedBy != "" {
		impl := b.findClass(fd.ImplementedBy, c.QualifiedName)
		if impl == nil {
			b.diags.AddError("unknown_class", fmt.Sprintf("implementing class %q not found", fd.ImplementedBy),
				entity, b.suggestClasses(fd.ImplementedBy)...)

			return nil, false
		}

		fn.Implementor = impl
	}

	ok := true

	if !fn.Constructor {
		ret, found := b.resolveType(fd.Return, c.QualifiedName, entity)
		fn.Return = ret
		ok = found
	}

	for _, ad := range fd.Args {
		ref, found := b.resolveType(ad.Type, c.QualifiedName, entity)
		if !found || ref == nil {
			if found {
				b.diags.AddError("void_argument", fmt.Sprintf("argument %q has no type", ad.Name), entity)
			}

			ok = false

			continue
		}

		fn.Arguments = append(fn.Arguments, &metamodel.Argument{Name: ad.Name, Type: ref, DefaultValue: ad.Default})
	}

	return fn, ok
}

// resolveType looks a spelling up from inside scope. A void spelling
// resolves to nil and true.
func (b *builder) resolveType(spelling, scope, entity string) (*metamodel.TypeRef, bool) {
	ts := parseTypeSpelling(spelling)
	if ts.isVoid() {
		return nil, true
	}

	ref := &metamodel.TypeRef{Const: ts.Const, Reference: ts.Reference, Indirections: ts.Indirections}

	if ts.Name == "void" {
		ref.Entry = b.void
		return ref, true
	}

	for _, name := range scopeCandidates(ts.Name, scope) {
		if t := b.snap.TypeEntry(name); t != nil {
			ref.Entry = t
			return ref, true
		}
	}

	b.diags.AddError("unknown_type", fmt.Sprintf("type %q not found", ts.Name), entity, b.suggestTypes(ts.Name)...)

	return nil, false
}

func (b *builder) findClass(name, scope string) *metamodel.Class {
	for _, candidate := range scopeCandidates(name, scope) {
		if c := b.snap.FindClass(candidate); c != nil {
			return c
		}
	}

	return nil
}

func (b *builder) suggestTypes(name string) []string {
	known := make([]string, 0, len(b.snap.TypeEntries()))
	for _, t := range b.snap.TypeEntries() {
		known = append(known, t.Name)
	}

	return match.Suggest(name, known, maxSuggestions)
}

func (b *builder) suggestClasses(name string) []string {
	known := make([]string, 0, len(b.snap.Classes()))
	for _, c := range b.snap.Classes() {
		known = append(known, c.QualifiedName)
	}

	return match.Suggest(name, known, maxSuggestions)
}

func generateFlag(v *bool) bool {
	return v == nil || *v
}
