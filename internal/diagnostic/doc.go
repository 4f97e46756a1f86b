// Package diagnostic provides structured infos, warnings and errors for the
// typesystem loader and the module planner.
//
// Key capabilities:
//   - Unknown type and class reports with "did you mean" suggestions
//   - Missing include notes for headers that degrade gracefully
//   - Folding error diagnostics into one hinted error
package diagnostic
