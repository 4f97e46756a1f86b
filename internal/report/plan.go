package report

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"header-generator/internal/plan"
)

const noMembers = "-"

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault

	return tbl
}

// WrapperTable lists every function routing decision, one row per
// function, grouped by wrapper.
func WrapperTable(wrappers []*plan.WrapperSpec) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Wrapper", "Function", "Route", "Virtual", "Dispatcher"})

	var rows int

	for _, w := range wrappers {
		if !w.EmitBody {
			tbl.AppendRow(table.Row{w.WrapperName, noMembers, "no body", "", ""})
			rows++

			continue
		}

		for _, fp := range w.Functions {
			virtual := ""
			if fp.Virtual {
				virtual = "yes"
			}

			body := ""
			if fp.Body != plan.BodyNone {
				body = fp.Body.String()
			}

			tbl.AppendRow(table.Row{w.WrapperName, fp.Function.Name, fp.Route.String(), virtual, body})
			rows++
		}
	}

	dispatchers := 0
	for _, w := range wrappers {
		dispatchers += len(w.Dispatchers())
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d rows, %d dispatchers", rows, dispatchers)})

	return tbl.Render()
}

// ConverterTable lists the converter shape of each module entry.
func ConverterTable(mp *plan.ModulePlan) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Entry", "Kind", "Converter", "Members", "Conversions", "User rule"})

	for _, e := range mp.Entries {
		if e.Converter == nil {
			tbl.AppendRow(table.Row{e.Entry.Name, e.Kind.String(), noMembers, "", "", ""})
			continue
		}

		spec := e.Converter

		members := strings.Join(spec.Shape.Members(), ", ")
		if members == "" {
			members = noMembers
		}

		rule := ""
		if spec.UserRule {
			rule = "yes"
		}

		tbl.AppendRow(table.Row{
			e.Entry.Name,
			e.Kind.String(),
			plan.ConverterName(spec.Specialization),
			members,
			len(spec.Conversions),
			rule,
		})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d converters", len(mp.Converters()))})

	return tbl.Render()
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                6,
}

// Dump renders a deep structural dump of any planning value.
func Dump(v any) string {
	return dumpConfig.Sdump(v)
}
