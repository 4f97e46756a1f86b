// Package match ranks known names by similarity to an unknown one. The
// typesystem loader uses it to attach "did you mean" suggestions to
// unknown_type and unknown_class diagnostics.
package match
