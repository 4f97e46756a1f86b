package gen

import (
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"header-generator/internal/plan"
)

var wrapperTemplate = template.Must(template.New("wrapper").Parse(`{{.License}}#ifndef {{.Guard}}
#define {{.Guard}}

{{if .Body -}}
// The mother of all C++ binding hacks!
#define protected public

{{end -}}
#include <{{.RuntimeHeader}}>

{{if .Include -}}
{{.Include}}

{{end -}}
{{range .DeclarationSnips -}}
{{.}}

{{end -}}
{{if .Body -}}
class {{.LocalMacro}} {{.Wrapper}} : public {{.Base}}
{
public:
{{- if .CopyConstructor}}
    {{.Wrapper}}(const {{.Base}}& self) : {{.Base}}(self)
    {
    }
{{end}}
{{.Members}}    {{.Destructor}};
{{- with .ImportParent}}
    using {{.}}::parent;
{{- end}}
{{- range .EndSnips}}
{{.}}
{{- end}}
};

{{end -}}
#endif // {{.Guard}}
`))

// wrapperData holds everything the wrapper template renders.
type wrapperData struct {
	License          string
	Guard            string
	Body             bool
	RuntimeHeader    string
	Include          string
	DeclarationSnips []string
	LocalMacro       string
	Wrapper          string
	Base             string
	CopyConstructor  bool
	Members          string
	Destructor       string
	ImportParent     string
	EndSnips         []string
}

// EmitWrapper renders the wrapper header of one class.
func EmitWrapper(spec *plan.WrapperSpec, cfg Config) (string, error) {
	data := wrapperData{
		License:          licenseComment(cfg.License),
		Guard:            spec.GuardName,
		Body:             spec.EmitBody,
		RuntimeHeader:    cfg.RuntimeHeader,
		Include:          spec.Include.String(),
		DeclarationSnips: trimSnips(spec.DeclarationSnips),
		LocalMacro:       cfg.LocalMacro,
		Wrapper:          spec.WrapperName,
		Base:             spec.BaseName,
		CopyConstructor:  spec.CopyConstructor,
		Members:          wrapperMembers(spec),
		Destructor:       spec.Destructor,
		ImportParent:     spec.ImportParent,
		EndSnips:         trimSnips(spec.EndSnips),
	}

	var sb strings.Builder
	if err := wrapperTemplate.Execute(&sb, data); err != nil {
		return "", errors.Wrapf(err, "rendering wrapper %s", spec.WrapperName)
	}

	return sb.String(), nil
}

// wrapperMembers renders routed declarations, each followed by its
// dispatcher when it has one.
func wrapperMembers(spec *plan.WrapperSpec) string {
	var w codeWriter

	w.Indent()

	for _, fp := range spec.Functions {
		w.Line(declaration(fp, spec.WrapperName), ";")

		if fp.Route != plan.RouteDeclareAndDispatch {
			continue
		}

		w.Line("static ", dispatcherSignature(fp.Function), " {")
		w.Indent()

		if stmt := dispatcherStatement(fp); stmt != "" {
			w.Line(stmt)
		}

		w.Dedent()
		w.Line("}")
	}

	return w.String()
}

func trimSnips(snips []string) []string {
	out := make([]string, 0, len(snips))

	for _, s := range snips {
		if s = strings.Trim(s, "\n"); s != "" {
			out = append(out, s)
		}
	}

	return out
}
