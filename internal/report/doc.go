// Package report renders planning results, check outcomes and diagnostics
// for the terminal.
package report
