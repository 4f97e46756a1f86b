package gen

import (
	"path"
	"strings"

	"github.com/cockroachdb/errors"

	"header-generator/internal/common"
	"header-generator/internal/diagnostic"
	"header-generator/internal/logger"
	"header-generator/internal/metamodel"
	"header-generator/internal/plan"
)

// GeneratedFile represents a generated header.
type GeneratedFile struct {
	// Path is relative to the output directory (e.g., "sample/point_wrapper.h").
	Path string
	// Content is the header text.
	Content []byte
}

// Result is the outcome of one generation pass.
type Result struct {
	Files       []GeneratedFile
	Module      *plan.ModulePlan
	Wrappers    []*plan.WrapperSpec
	Diagnostics diagnostic.Diagnostics
}

// Generator generates binding headers from a metamodel.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// Plan computes every wrapper and module decision without rendering text.
func (g *Generator) Plan(m metamodel.Model) (*Result, error) {
	res := &Result{}

	for _, c := range m.Classes() {
		if !c.ShouldGenerate() {
			continue
		}

		spec := plan.PlanWrapper(c, g.config.Naming)
		logRoutes(spec)

		res.Wrappers = append(res.Wrappers, spec)
	}

	pkg := g.config.Package
	if pkg == "" {
		pkg = plan.InferPackage(m)
		if pkg == "" {
			res.Diagnostics.AddWarning("no_package", "no package found, module header goes to the output root", "")
		}
	}

	mp, err := plan.BuildModule(m, pkg)
	if err != nil {
		return nil, errors.Wrap(err, "planning module header")
	}

	res.Module = mp
	res.Diagnostics.Merge(mp.Diagnostics)

	for _, conv := range mp.Converters() {
		logger.Logger.Debugw("Planned converter",
			logger.FieldType, conv.Entry.Name,
			"members", conv.Shape.Members(),
			logger.FieldCount, len(conv.Conversions))
	}

	for _, d := range res.Diagnostics.All() {
		logger.Logger.Debugw(d.Message, logger.FieldCode, d.Code, "severity", d.Severity.String())
	}

	logger.Logger.Infow("Planned module",
		logger.FieldPackage, mp.Package,
		logger.FieldCount, len(mp.Entries))

	return res, nil
}

func logRoutes(spec *plan.WrapperSpec) {
	for _, fp := range spec.Functions {
		logger.Logger.Debugw("Planned function",
			logger.FieldClass, spec.BaseName,
			logger.FieldFunction, fp.Function.Name,
			logger.FieldRoute, fp.Route.String())
	}

	logger.Logger.Debugw("Planned wrapper",
		logger.FieldClass, spec.BaseName,
		logger.FieldCount, len(spec.Dispatchers()))
}

// Generate plans and renders all headers. Files come in class order, the
// module header last.
func (g *Generator) Generate(m metamodel.Model) (*Result, error) {
	res, err := g.Plan(m)
	if err != nil {
		return nil, err
	}

	for _, spec := range res.Wrappers {
		text, err := EmitWrapper(spec, g.config)
		if err != nil {
			return nil, err
		}

		logger.Logger.Debugw("Generated wrapper header",
			logger.FieldClass, spec.Class.FullName(),
			logger.FieldFile, spec.FileName,
			logger.FieldCount, len(spec.Functions))

		res.Files = append(res.Files, GeneratedFile{Path: spec.FileName, Content: []byte(text)})
	}

	module, err := g.moduleName(res.Module.Package)
	if err != nil {
		return nil, err
	}

	file := GeneratedFile{
		Path:    ModuleHeaderPath(res.Module.Package, module, g.config.ModuleHeaderSuffix),
		Content: []byte(AssembleModule(res.Module, module, g.config)),
	}

	logger.Logger.Debugw("Generated module header",
		logger.FieldModule, module,
		logger.FieldFile, file.Path,
		logger.FieldCount, len(res.Module.Entries))

	res.Files = append(res.Files, file)

	return res, nil
}

func (g *Generator) moduleName(pkg string) (string, error) {
	if g.config.Module != "" {
		return g.config.Module, nil
	}

	if base := common.PackageBase(pkg); base != "" {
		return base, nil
	}

	return "", errors.WithHint(
		errors.New("module name is not set and no package to derive it from"),
		"set 'module' in the configuration",
	)
}

// ModuleHeaderPath returns the umbrella header path relative to the output
// directory.
func ModuleHeaderPath(pkg, module, suffix string) string {
	return path.Join(common.PackageDir(pkg), strings.ToLower(module)+suffix)
}
