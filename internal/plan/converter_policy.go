package plan

import (
	"github.com/cockroachdb/errors"

	"header-generator/internal/metamodel"
)

// RequiredMembers decides which Converter<T> members a type needs and how
// each is built. abstract tells whether the type's class is abstract, which
// makes the specialization pointer-qualified like object types.
//
// conversions is used in the given order: it becomes both the isConvertible
// disjunction and the first-match-wins toCpp chain.
func RequiredMembers(
	t *metamodel.TypeEntry,
	conversions []*metamodel.Function,
	abstract bool,
) (*ConverterSpec, error) {
	if t == nil {
		return nil, errors.Wrap(ErrContractViolation, "converter requested for nil type entry")
	}

	switch t.Category {
	case metamodel.CategoryEnum, metamodel.CategoryFlags, metamodel.CategoryValue, metamodel.CategoryObject:
	default:
		return nil, errors.WithHint(
			errors.Wrapf(ErrContractViolation, "converter requested for %s type %q", t.Category, t.Name),
			"only enum, flags, value and object types get converter specializations",
		)
	}

	if abstract && t.IsValue() && len(conversions) > 0 {
		return nil, errors.WithHint(
			errors.Wrapf(ErrContractViolation, "abstract value type %q has implicit conversions", t.Name),
			"an abstract class cannot be built from a conversion source",
		)
	}

	spec := &ConverterSpec{
		Entry:          t,
		Specialization: Specialization(t, abstract || t.IsObject()),
		TypeObject:     TypeObjectName(t),
		Create:         CreateViaObjectWrapper,
		UserRule:       t.HasConversionRule(),
	}

	if t.IsEnum() || t.IsFlags() {
		spec.Create = CreateViaEnum
	}

	for _, fn := range conversions {
		conv, err := conversionOf(t, fn)
		if err != nil {
			return nil, err
		}

		spec.Conversions = append(spec.Conversions, conv)
	}

	hasConversions := len(spec.Conversions) > 0

	spec.Shape = ConverterShape{
		CreateWrapper: true,
		IsConvertible: hasConversions,
		ToPython:      t.IsValue(),
		ToCpp:         t.IsValue() && hasConversions,
		CopyCppObject: t.IsValue() && hasConversions,
	}

	return spec, nil
}

func conversionOf(target *metamodel.TypeEntry, fn *metamodel.Function) (Conversion, error) {
	arg := fn.FirstArgument()
	if arg == nil || arg.Type == nil || arg.Type.Entry == nil {
		return Conversion{}, errors.Wrapf(ErrContractViolation,
			"implicit conversion %q into %q has no source argument", fn.Name, target.Name)
	}

	src := arg.Type.Entry

	return Conversion{
		Function:        fn,
		Source:          arg.Type,
		Check:           CheckFunction(src),
		SourceConverter: ConverterName(Specialization(src, src.IsObject())),
	}, nil
}
