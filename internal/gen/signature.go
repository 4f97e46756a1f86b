package gen

import (
	"fmt"
	"strings"

	"header-generator/internal/metamodel"
	"header-generator/internal/plan"
)

// argumentName returns the declared name or a positional fallback.
func argumentName(a *metamodel.Argument, i int) string {
	if a.Name != "" {
		return a.Name
	}

	return fmt.Sprintf("arg%d", i)
}

// argumentList renders "const Point& p, int x = 0".
func argumentList(fn *metamodel.Function, withDefaults bool) string {
	parts := make([]string, 0, len(fn.Arguments))

	for i, a := range fn.Arguments {
		decl := a.Type.CppSignature() + " " + argumentName(a, i)
		if withDefaults && a.DefaultValue != "" {
			decl += " = " + a.DefaultValue
		}

		parts = append(parts, decl)
	}

	return strings.Join(parts, ", ")
}

// callArguments renders "p, x".
func callArguments(fn *metamodel.Function) string {
	names := make([]string, 0, len(fn.Arguments))
	for i, a := range fn.Arguments {
		names = append(names, argumentName(a, i))
	}

	return strings.Join(names, ", ")
}

func constSuffix(fn *metamodel.Function) string {
	if fn.Const {
		return " const"
	}

	return ""
}

// declaration renders a wrapper member declaration without the trailing
// semicolon. Constructors are named after the wrapper.
func declaration(fp plan.FunctionPlan, wrapperName string) string {
	fn := fp.Function

	var sb strings.Builder

	if fp.Virtual {
		sb.WriteString("virtual ")
	}

	if fn.Constructor {
		sb.WriteString(wrapperName)
	} else {
		sb.WriteString(fn.Return.CppSignature())
		sb.WriteByte(' ')
		sb.WriteString(fn.Name)
	}

	sb.WriteString("(" + argumentList(fn, true) + ")")
	sb.WriteString(constSuffix(fn))

	return sb.String()
}

// dispatcherSignature renders "double area_dispatcher(Shape& self, int x)".
func dispatcherSignature(fn *metamodel.Function) string {
	params := fn.Owner.QualifiedName + "& self"
	if args := argumentList(fn, false); args != "" {
		params += ", " + args
	}

	return fmt.Sprintf("%s %s_dispatcher(%s)", fn.Return.CppSignature(), fn.Name, params)
}

// dispatcherStatement renders the single statement of a dispatcher body, or
// "" when a void stub has nothing to do.
func dispatcherStatement(fp plan.FunctionPlan) string {
	fn := fp.Function
	void := fn.Return.IsVoid()

	var expr string

	switch fp.Body {
	case plan.BodyCallThrough:
		expr = fmt.Sprintf("self.%s::%s(%s)", fn.Implementor.QualifiedName, fn.Name, callArguments(fn))
	case plan.BodyReturnNull:
		if void {
			return ""
		}

		expr = "0"
	case plan.BodyReturnDefault:
		expr = fn.Return.ReturnType() + "()"
	default:
		return ""
	}

	if void {
		return expr + ";"
	}

	return "return " + expr + ";"
}
