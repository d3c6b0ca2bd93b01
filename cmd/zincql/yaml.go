package main

import (
	"os"

	"gopkg.in/yaml.v3"

	zinc "github.com/bacnetic/zinc"
)

type metaDoc struct {
	Version int               `yaml:"version"`
	Meta    map[string]string `yaml:"meta,omitempty"`
	Columns []columnDoc       `yaml:"columns"`
}

type columnDoc struct {
	Name string            `yaml:"name"`
	Meta map[string]string `yaml:"meta,omitempty"`
}

// writeMetaYAML renders a grid's meta and column tags (but not its row
// data) as YAML, for feeding into config-driven tooling that only needs the
// shape of a grid rather than its full contents.
func writeMetaYAML(g *zinc.Grid, path string) error {
	doc := metaDoc{
		Version: g.Version(),
		Meta:    tagsOf(g.Meta()),
	}
	for _, col := range g.Columns() {
		doc.Columns = append(doc.Columns, columnDoc{
			Name: col.Name,
			Meta: tagsOf(col.Meta),
		})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}
