// Package plan turns metamodel facts into generation decisions.
//
// Every decision the header generator makes is computed here, once per
// entity, as a tagged value:
//
//   - FunctionRoute: Skip, DeclareOnly or DeclareAndDispatch per function
//   - DispatchBody: call-through or default-value stub per dispatcher
//   - ConverterShape: which Converter<T> members a type needs
//   - CreatePath: enum construction or object-wrapper construction
//
// Package gen only renders these values; it never re-evaluates flag
// combinations. The planning pipeline:
//  1. PlanWrapper per class → WrapperSpec (routes + dispatcher bodies)
//  2. BuildModule over the whole model → ModulePlan (ordered entries,
//     de-duplicated includes, converter specs, conversion rules)
package plan
