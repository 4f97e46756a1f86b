package main

import (
	"github.com/spf13/cobra"

	"header-generator/internal/common"
	"header-generator/internal/gen"
	"header-generator/internal/logger"
	"header-generator/internal/report"
)

func genCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "gen [typesystem]",
		Short: "Generate wrapper and module headers",
		Long: `Generate one wrapper header per generated class and the umbrella module
header into the output directory. Package sub directories are created as
needed and existing files are overwritten.

Examples:
  header-generator gen
  header-generator gen -c examples/geometry/header-generator.yaml
  header-generator gen geometry.yaml --dry-run`,
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

			if !dryRun {
				if err := gen.WriteFiles(res.Files, s.outputDir); err != nil {
					logger.Logger.Errorw("Writing headers failed", logger.FieldError, err)
					return err
				}
			}

			logger.Logger.Infow("Generation finished",
				logger.FieldCount, len(res.Files),
				"output_dir", s.outputDir,
				"dry_run", dryRun)

			report.WriteSummary(cmd.OutOrStdout(), s.outputDir, res.Files)

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "render headers without writing them")

	return cmd
}

func firstArg(args []string) string {
	first, _ := common.First(args)

	return first
}
