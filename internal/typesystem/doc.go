// Package typesystem loads typesystem documents into a metamodel snapshot.
//
// A document describes the module's package, its primitive and container
// types, global enums and classes with their functions. YAML and TOML
// spellings carry the same schema:
//
//	package: sample
//	primitives:
//	  - {name: int, target: PyInt}
//	enums:
//	  - {name: Color, include: color.h, flags: Colors}
//	classes:
//	  - name: Point
//	    kind: value
//	    include: point.h
//	    functions:
//	      - {name: Point, constructor: true, implicit: true, args: [{name: x, type: int}]}
//
// Loading is two passes: every type name is registered first, then class
// members are resolved against the registry. Structural problems are
// collected as diagnostics rather than failing on the first one.
package typesystem
