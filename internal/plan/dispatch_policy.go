package plan

import "header-generator/internal/metamodel"

// DispatchDecision routes a function of a wrapper class.
//
// Rules, in order:
//  1. private, removed-but-not-abstract and copy constructors are skipped
//     (copy construction has its own emitted constructor);
//  2. virtual or abstract, non-constructor functions declared at their most
//     derived point on a class without a private destructor get a dispatcher,
//     unless they are abstract and still present;
//  3. remaining constructors, abstract and virtual functions are declared only;
//  4. everything else is skipped.
func DispatchDecision(fn *metamodel.Function) FunctionRoute {
	if fn.Private || (fn.ModifiedRemoved && !fn.Abstract) || fn.CopyConstructor {
		return RouteSkip
	}

	if needsDispatcher(fn) {
		return RouteDeclareAndDispatch
	}

	if fn.Constructor || fn.Abstract || fn.Virtual {
		return RouteDeclareOnly
	}

	return RouteSkip
}

// An abstract function that configuration removed still needs a body in the
// wrapper, so it gets a default stub. It keeps its abstract flag.
func needsDispatcher(fn *metamodel.Function) bool {
	if !fn.Virtual && !fn.Abstract {
		return false
	}

	if fn.Constructor || fn.IsInherited() {
		return false
	}

	if fn.Owner != nil && fn.Owner.PrivateDestructor {
		return false
	}

	return !fn.Abstract || fn.ModifiedRemoved
}

// DispatcherBody decides what a dispatcher returns. Functions that are not
// routed to DeclareAndDispatch get BodyNone.
func DispatcherBody(fn *metamodel.Function) DispatchBody {
	if DispatchDecision(fn) != RouteDeclareAndDispatch {
		return BodyNone
	}

	if !fn.ModifiedRemoved {
		return BodyCallThrough
	}

	ret := fn.Return
	if ret.IsVoid() || ret.IsVoidPointer() || ret.IsObject() || ret.IsQObject() {
		return BodyReturnNull
	}

	return BodyReturnDefault
}

// PlanFunction computes the full routing decision for one function.
func PlanFunction(fn *metamodel.Function) FunctionPlan {
	route := DispatchDecision(fn)

	return FunctionPlan{
		Function: fn,
		Route:    route,
		Virtual:  route != RouteSkip && (fn.Virtual || fn.Abstract),
		Body:     DispatcherBody(fn),
	}
}
