package plan

import (
	"header-generator/internal/metamodel"
)

// PlanWrapper computes the wrapper-class decisions for one class.
func PlanWrapper(c *metamodel.Class, opts Options) *WrapperSpec {
	name := WrapperName(c)

	spec := &WrapperSpec{
		Class:       c,
		WrapperName: name,
		BaseName:    c.QualifiedName,
		GuardName:   GuardName(name),
		FileName:    WrapperFileName(c, opts.WrapperSuffix),
		EmitBody:    !c.IsNamespace() && !c.PrivateDestructor,
		Destructor:  "~" + name + "()",
	}

	if c.Entry != nil {
		spec.Include = c.Entry.Include
		spec.DeclarationSnips = snipCode(c.Entry.Snips(metamodel.SnipDeclaration, metamodel.SnipNative))
		spec.EndSnips = snipCode(c.Entry.Snips(metamodel.SnipPrototypeInitialization, metamodel.SnipNative))
	}

	if !spec.EmitBody {
		return spec
	}

	spec.CopyConstructor = c.CloneOperator

	for _, fn := range c.Functions {
		fp := PlanFunction(fn)
		if fp.Route == RouteSkip {
			continue
		}

		spec.Functions = append(spec.Functions, fp)
	}

	if c.QObject && c.Name != opts.ObjectBase {
		spec.ImportParent = opts.ObjectBase
	}

	return spec
}

func snipCode(snips []metamodel.CodeSnip) []string {
	out := make([]string, 0, len(snips))
	for _, s := range snips {
		out = append(out, s.Code)
	}

	return out
}
