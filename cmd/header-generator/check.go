package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"header-generator/internal/gen"
	"header-generator/internal/logger"
	"header-generator/internal/report"
)

// errStale is returned when check finds missing or stale headers.
var errStale = errors.New("generated headers are out of date")

func checkCmd(opts *rootOptions) *cobra.Command {
	var showDiff bool

	cmd := &cobra.Command{
		Use:   "check [typesystem]",
		Short: "Report generated headers that are missing or stale",
		Long: `Render all headers in memory and compare them with the output directory.
Nothing is written. The exit status is 2 when any header differs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync()

			s, err := openSession(cmd.ErrOrStderr(), opts, firstArg(args))
			if err != nil {
				return err
			}

			res, err := s.generate(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			statuses, err := gen.Check(res.Files, s.outputDir)
			if err != nil {
				return err
			}

			report.WriteCheck(cmd.OutOrStdout(), statuses, showDiff)

			if !gen.UpToDate(statuses) {
				return errStale
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "print line diffs of stale headers")

	return cmd
}
