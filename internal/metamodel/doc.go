// Package metamodel holds the read-only description of the C++ API being
// bound: classes, functions, enums and type entries, already resolved by an
// external extractor.
//
// Nothing in the generator mutates a Model. Snapshot is the in-memory
// implementation the typesystem loader builds; once Freeze is called its
// collections are only ever read.
//
// All collections are slices in declaration order. Several generated
// constructs (converter if/else chains, module header sections) reproduce
// that order verbatim, so it must never be re-sorted.
package metamodel
