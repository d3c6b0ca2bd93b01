package model

// ColumnInfo pairs a column name with its metadata dict. Column order is
// significant; by convention the first column is named "ts" (spec.md §3).
type ColumnInfo struct {
	Name string
	Meta *Dict

	// Inferred holds the GridBuilder's heuristic type guess ("Number" or
	// "Bool") for a column whose meta carried no "kind" tag (spec.md
	// §4.4 step 2, "if kind is absent"). It is informational only: the
	// emitter never writes it back, so it cannot corrupt a round trip.
	Inferred string
}

// Grid is the immutable result of a successful parse: a version, a
// grid-level metadata dict, ordered column info, and row-major cell data.
// Grids are built once by GridBuilder and are read-only thereafter
// (spec.md §3 Lifecycle); they may be shared read-only across goroutines.
type Grid struct {
	version int
	meta    *Dict
	columns []ColumnInfo
	rows    [][]Scalar
}

// Version returns the Zinc version this grid was parsed as (2 or 3).
func (g *Grid) Version() int { return g.version }

// WithVersion returns a shallow copy of g stamped with a different Zinc
// version header (2 or 3 per spec.md §4.3's version check). The copy shares
// meta/columns/rows with g, which is safe because both are read-only once
// built; only the version tag on the copy differs.
func (g *Grid) WithVersion(version int) (*Grid, error) {
	if version != 2 && version != 3 {
		return nil, NewError(ParseError, 0, "", errUnsupportedVersion)
	}
	ng := *g
	ng.version = version
	return &ng, nil
}

// Meta returns the grid-level metadata dict (the "ver" tag itself is
// consumed into Version and never stored here, per spec.md §3).
func (g *Grid) Meta() *Dict { return g.meta }

// Columns returns the ordered column descriptors.
func (g *Grid) Columns() []ColumnInfo {
	out := make([]ColumnInfo, len(g.columns))
	copy(out, g.columns)
	return out
}

// Column looks up a column descriptor by name.
func (g *Grid) Column(name string) (ColumnInfo, bool) {
	for _, c := range g.columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnInfo{}, false
}

// NumCols reports the declared column count.
func (g *Grid) NumCols() int { return len(g.columns) }

// NumRows reports the row count.
func (g *Grid) NumRows() int { return len(g.rows) }

// Rows returns the row-major cell data. Each row has exactly NumCols()
// cells (spec.md §3 invariant 1); a missing cell is Null.
func (g *Grid) Rows() [][]Scalar {
	out := make([][]Scalar, len(g.rows))
	for i, r := range g.rows {
		rc := make([]Scalar, len(r))
		copy(rc, r)
		out[i] = rc
	}
	return out
}

// Series returns the data cells of the grid's single non-index column and
// true, when the grid has exactly two columns (an index column plus one
// data column). Otherwise it returns nil, false. This is the Go shape of
// spec.md §6's "squeeze toggles single-column-to-series behavior": a Grid
// has no DataFrame/Series distinction of its own, so Series is a
// convenience view rather than a second storage representation.
func (g *Grid) Series() ([]Scalar, bool) {
	if len(g.columns) != 2 {
		return nil, false
	}
	out := make([]Scalar, len(g.rows))
	for i, r := range g.rows {
		out[i] = r[1]
	}
	return out, true
}

// TimeIndex returns the cells of the first ("ts") column. The spec's
// originating implementation pops this column out to serve as a
// DataFrame row index; since this Grid is not DataFrame-backed, the ts
// column stays an ordinary column in Columns()/Rows() and TimeIndex is
// offered as a convenience accessor instead (see DESIGN.md).
func (g *Grid) TimeIndex() []Scalar {
	if len(g.columns) == 0 {
		return nil
	}
	out := make([]Scalar, len(g.rows))
	for i, r := range g.rows {
		out[i] = r[0]
	}
	return out
}
