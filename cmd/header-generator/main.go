// Package main provides the CLI entrypoint for header-generator.
//
// header-generator reads a typesystem document describing C++ classes,
// enums and conversion rules, and writes the binding headers:
//   - one wrapper-class header per generated class
//   - one umbrella module header with converters and type checks
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// Set through -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
)

// exitCodeStale is returned by check when the output directory is out of date.
const exitCodeStale = 2

type rootOptions struct {
	configPath string
	verbosity  int
	jsonLog    bool
}

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}

	if errors.Is(err, errStale) {
		os.Exit(exitCodeStale)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
	}

	os.Exit(1)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "header-generator",
		Short: "Generate C++ binding headers from a typesystem document",
		Long: `header-generator emits wrapper-class headers and the umbrella module
header for a C++ extension module described by a typesystem document.

Commands:
  gen      Generate headers into the output directory
  check    Report generated headers that are missing or stale
  plan     Show wrapper routes and converter shapes without writing`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"configuration file (default: ./header-generator.{yaml,toml})")
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonLog, "json-log", false, "emit logs as JSON")

	rootCmd.AddCommand(genCmd(opts))
	rootCmd.AddCommand(checkCmd(opts))
	rootCmd.AddCommand(planCmd(opts))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "header-generator %s (commit: %s)\n", version, commit)
		},
	}
}
