package main

import (
	"io"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"header-generator/internal/config"
	"header-generator/internal/gen"
	"header-generator/internal/logger"
	"header-generator/internal/metamodel"
	"header-generator/internal/report"
	"header-generator/internal/typesystem"
)

// session is a loaded configuration plus the typesystem it points at.
type session struct {
	generator *gen.Generator
	snapshot  *metamodel.Snapshot
	// outputDir is resolved against the configuration file's directory.
	outputDir string
}

// openSession loads configuration, initializes logging and loads the
// typesystem. A non-empty typesystemArg overrides the configured document.
// Load diagnostics are printed to w, including when loading fails.
func openSession(w io.Writer, opts *rootOptions, typesystemArg string) (*session, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	if err := initLogging(opts, cfg); err != nil {
		return nil, err
	}

	baseDir := "."
	if opts.configPath != "" {
		baseDir = filepath.Dir(opts.configPath)
	}

	tsPath := resolvePath(baseDir, cfg.Typesystem)
	if typesystemArg != "" {
		tsPath = typesystemArg
	}

	if tsPath == "" {
		return nil, errors.WithHint(
			errors.New("no typesystem document given"),
			"pass it as an argument or set 'typesystem' in the configuration",
		)
	}

	cfg.LicenseFile = resolvePath(baseDir, cfg.LicenseFile)

	genCfg, err := cfg.Generator()
	if err != nil {
		return nil, err
	}

	logger.Logger.Infow("Loading typesystem", logger.FieldFile, tsPath)

	snap, diags, err := typesystem.Load(tsPath)
	report.WriteDiagnostics(w, diags)

	if err != nil {
		return nil, err
	}

	return &session{
		generator: gen.NewGenerator(genCfg),
		snapshot:  snap,
		outputDir: resolvePath(baseDir, cfg.OutputDir),
	}, nil
}

// generate renders every header and prints planning diagnostics.
func (s *session) generate(w io.Writer) (*gen.Result, error) {
	res, err := s.generator.Generate(s.snapshot)
	if err != nil {
		return nil, err
	}

	report.WriteDiagnostics(w, res.Diagnostics)

	return res, nil
}

func initLogging(opts *rootOptions, cfg *config.Config) error {
	// -v flags win over the configured level.
	level := logger.VerbosityToLevel(opts.verbosity)

	if opts.verbosity == logger.VerbosityQuiet {
		parsed, err := logger.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return err
		}

		level = parsed
	}

	if err := logger.Initialize(level, opts.jsonLog || cfg.JSONLogging()); err != nil {
		return err
	}

	// Escape codes would end up inside JSON log collectors.
	if logger.JSONOutput {
		color.NoColor = true
	}

	return nil
}

// resolvePath joins relative paths to base; empty and absolute paths are
// returned unchanged.
func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(base, p)
}
