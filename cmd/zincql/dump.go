package main

import (
	"github.com/k0kubun/pp/v3"

	zinc "github.com/bacnetic/zinc"
)

type gridDump struct {
	Version int
	Meta    map[string]string
	Columns []columnDump
	Rows    [][]string
}

type columnDump struct {
	Name     string
	Meta     map[string]string
	Inferred string `pp:",omitempty"`
}

// dumpGrid pretty-prints a grid's meta, columns, and row cells using the
// colorized struct printer, for interactive inspection with --dump.
func dumpGrid(g *zinc.Grid) {
	printer := pp.New()
	printer.SetColoringEnabled(isTerminal())
	printer.Println(toDump(g))
}

func toDump(g *zinc.Grid) gridDump {
	d := gridDump{
		Version: g.Version(),
		Meta:    tagsOf(g.Meta()),
	}
	for _, col := range g.Columns() {
		d.Columns = append(d.Columns, columnDump{
			Name:     col.Name,
			Meta:     tagsOf(col.Meta),
			Inferred: col.Inferred,
		})
	}
	for _, row := range g.Rows() {
		var strs []string
		for _, cell := range row {
			strs = append(strs, cell.String())
		}
		d.Rows = append(d.Rows, strs)
	}
	return d
}

func tagsOf(d *zinc.Dict) map[string]string {
	out := make(map[string]string, d.Len())
	for _, k := range d.Keys() {
		v, _ := d.Get(k)
		out[k] = v.String()
	}
	return out
}
