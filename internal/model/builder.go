package model

import "strings"

// GridBuilder accumulates a grid's meta, columns, and rows, then validates
// and sanitizes them once at Build time (spec.md §4.4). A Grid is never
// partially visible: either Build succeeds and returns a fully-sanitized
// immutable Grid, or it fails and returns no Grid at all, matching the
// fail-fast contract the parser relies on.
type GridBuilder struct {
	version int
	meta    *Dict
	cols    []ColumnInfo
	rows    [][]Scalar
	names   map[string]int
}

// NewGridBuilder starts a builder for the given Zinc version (2 or 3).
func NewGridBuilder(version int) *GridBuilder {
	return &GridBuilder{version: version, meta: NewDict(), names: make(map[string]int)}
}

// AddMeta merges d into the grid-level metadata dict. A "ver" tag is
// skipped: the version is carried by the builder itself, not by the meta.
func (b *GridBuilder) AddMeta(d *Dict) {
	if d == nil {
		return
	}
	for _, k := range d.Keys() {
		if k == "ver" {
			continue
		}
		v, _ := d.Get(k)
		b.meta.Set(k, v)
	}
}

// AddCol appends a column declaration. Column names must be unique
// (spec.md §3 invariant 2).
func (b *GridBuilder) AddCol(name string, meta *Dict) error {
	if _, dup := b.names[name]; dup {
		return NewError(ParseError, 0, name, errDupCol)
	}
	if meta == nil {
		meta = NewDict()
	}
	b.names[name] = len(b.cols)
	b.cols = append(b.cols, ColumnInfo{Name: name, Meta: meta})
	return nil
}

// AddGeneratedCol appends a column declaration the way AddCol does, except
// that when meta carries no "id" tag of its own, one is stamped in with a
// freshly generated Ref (spec.md §4.4 step 3 already rewrites a column's
// printed name from a Ref's "id" tag at Build time; this is the entry point
// for code building a grid programmatically, which has no parsed Zinc text
// to carry that id the way a parsed column does).
func (b *GridBuilder) AddGeneratedCol(name string, meta *Dict) error {
	if meta == nil {
		meta = NewDict()
	}
	if !meta.Has("id") {
		meta.Set("id", NewRef(NewGridID()))
	}
	return b.AddCol(name, meta)
}

// AddRow appends a data row. cells must have exactly as many entries as
// there are declared columns (spec.md §3 invariant 1).
func (b *GridBuilder) AddRow(cells []Scalar) error {
	if len(cells) != len(b.cols) {
		return NewError(ParseError, 0, "", errRowWidth)
	}
	row := make([]Scalar, len(cells))
	copy(row, cells)
	b.rows = append(b.rows, row)
	return nil
}

// Build validates and sanitizes the accumulated columns against their own
// meta dicts, then returns the finished Grid.
//
// Per column (spec.md §4.4 step 2):
//   - kind "Number": every non-missing cell must be a Number; its unit is
//     inferred into the column meta when the meta carries none.
//   - kind carrying an "enum" tag: every non-missing cell must be a Str
//     naming one of the enum's comma-separated members.
//   - kind "Str": no transform.
//   - no kind tag: sampled up to 1000 leading non-missing cells to set
//     Inferred, informationally only.
//
// Step 3: a column whose meta carries an "id" Ref tag is renamed to that
// Ref's printed form.
func (b *GridBuilder) Build() (*Grid, error) {
	cols := make([]ColumnInfo, len(b.cols))
	copy(cols, b.cols)

	for i := range cols {
		if err := b.sanitizeColumn(&cols[i], i); err != nil {
			return nil, err
		}
		if idVal, ok := cols[i].Meta.Get("id"); ok && idVal.Kind() == KindRef {
			cols[i].Name = idVal.String()
		}
	}

	rows := make([][]Scalar, len(b.rows))
	for i, r := range b.rows {
		rc := make([]Scalar, len(r))
		copy(rc, r)
		rows[i] = rc
	}

	return &Grid{
		version: b.version,
		meta:    b.meta.Clone(),
		columns: cols,
		rows:    rows,
	}, nil
}

func (b *GridBuilder) sanitizeColumn(col *ColumnInfo, idx int) error {
	kindVal, hasKind := col.Meta.Get("kind")
	kindName := ""
	if hasKind && kindVal.Kind() == KindStr {
		kindName = kindVal.StrVal()
	}

	if enumVal, ok := col.Meta.Get("enum"); ok {
		return b.sanitizeEnum(col, idx, enumVal)
	}

	switch kindName {
	case "Number":
		return b.sanitizeNumber(col, idx)
	case "Str":
		return nil
	case "":
		b.inferColumn(col, idx)
		return nil
	default:
		return nil
	}
}

func (b *GridBuilder) sanitizeNumber(col *ColumnInfo, idx int) error {
	unit := ""
	if u, ok := col.Meta.Get("unit"); ok && u.Kind() == KindStr {
		unit = u.StrVal()
	}
	for _, row := range b.rows {
		cell := row[idx]
		if cell.IsMissing() || cell.Kind() == KindRemove {
			continue
		}
		if cell.Kind() != KindNumber {
			return NewError(ParseError, 0, col.Name, errColKind)
		}
		if unit == "" && cell.Unit() != "" {
			unit = cell.Unit()
		}
	}
	if unit != "" && !col.Meta.Has("unit") {
		col.Meta.Set("unit", Str(unit))
	}
	return nil
}

func (b *GridBuilder) sanitizeEnum(col *ColumnInfo, idx int, enumVal Scalar) error {
	if enumVal.Kind() != KindStr {
		return nil
	}
	members := strings.Split(enumVal.StrVal(), ",")
	allowed := make(map[string]bool, len(members))
	for _, m := range members {
		allowed[strings.TrimSpace(m)] = true
	}
	for _, row := range b.rows {
		cell := row[idx]
		if cell.IsMissing() || cell.Kind() == KindRemove {
			continue
		}
		if cell.Kind() != KindStr || !allowed[cell.StrVal()] {
			return NewError(ParseError, 0, col.Name, errEnumMember)
		}
	}
	return nil
}

// inferColumn samples up to 1000 leading non-missing cells to set
// ColumnInfo.Inferred. It never rejects a row: this is a best-effort hint
// for callers, not a validated kind.
func (b *GridBuilder) inferColumn(col *ColumnInfo, idx int) {
	const sampleLimit = 1000
	sawNumber, sawBool, sampled := false, false, 0
	for _, row := range b.rows {
		if sampled >= sampleLimit {
			break
		}
		cell := row[idx]
		if cell.IsMissing() || cell.Kind() == KindRemove {
			continue
		}
		sampled++
		switch cell.Kind() {
		case KindNumber:
			sawNumber = true
		case KindBool:
			sawBool = true
		default:
			return
		}
	}
	switch {
	case sampled == 0:
		return
	case sawNumber && !sawBool:
		col.Inferred = "Number"
	case sawBool && !sawNumber:
		col.Inferred = "Bool"
	}
}

var (
	errDupCol             = &builderError{"duplicate column name"}
	errRowWidth           = &builderError{"row has wrong number of cells"}
	errColKind            = &builderError{"cell kind does not match declared column kind"}
	errEnumMember         = &builderError{"cell is not a member of the column's enum"}
	errUnsupportedVersion = &builderError{"unsupported zinc version"}
)

type builderError struct{ msg string }

func (e *builderError) Error() string { return e.msg }
