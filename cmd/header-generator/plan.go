package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"header-generator/internal/logger"
	"header-generator/internal/report"
)

func planCmd(opts *rootOptions) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "plan [typesystem]",
		Short: "Show wrapper routes and converter shapes",
		Long: `Print how every function is routed in its wrapper class and which
converter members each module entry gets. No header text is rendered.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync()

			s, err := openSession(cmd.ErrOrStderr(), opts, firstArg(args))
			if err != nil {
				return err
			}

			res, err := s.generator.Plan(s.snapshot)
			if err != nil {
				return err
			}

			report.WriteDiagnostics(cmd.ErrOrStderr(), res.Diagnostics)

			out := cmd.OutOrStdout()

			if dump {
				fmt.Fprint(out, report.Dump(res.Module))
				return nil
			}

			fmt.Fprintln(out, "Wrappers:")
			fmt.Fprintln(out, report.WrapperTable(res.Wrappers))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Module entries:")
			fmt.Fprintln(out, report.ConverterTable(res.Module))

			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "dump the full module plan structure")

	return cmd
}
