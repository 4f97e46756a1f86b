// Package gen renders plan decisions into C++ binding headers.
//
// It produces one wrapper header per generated class and one umbrella
// module header per package:
//
//	sample/point_wrapper.h   (ClassWrapperEmitter, EmitWrapper)
//	sample/shape_wrapper.h
//	sample/sample_python.h   (ModuleHeaderAssembler, AssembleModule)
//
// Every decision (routes, dispatcher bodies, converter shapes, entry order)
// is taken in package plan; gen only lays text out. Output is a pure function
// of the metamodel and Config, so regenerating an unchanged model yields
// byte-identical files. Check relies on that.
package gen
