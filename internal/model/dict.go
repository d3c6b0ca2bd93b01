package model

// Dict is an insertion-ordered mapping from tag name to Scalar. Order must
// be preserved because emission round-trips depend on it (spec.md §9).
type Dict struct {
	order []string
	vals  map[string]Scalar
}

// NewDict returns an empty Dict.
func NewDict() *Dict {
	return &Dict{vals: make(map[string]Scalar)}
}

// Set inserts or overwrites the tag name with value v, preserving the
// original insertion position on overwrite.
func (d *Dict) Set(name string, v Scalar) {
	if _, ok := d.vals[name]; !ok {
		d.order = append(d.order, name)
	}
	d.vals[name] = v
}

// Get returns the value bound to name and whether it was present.
func (d *Dict) Get(name string) (Scalar, bool) {
	v, ok := d.vals[name]
	return v, ok
}

// Has reports whether name is bound in the dict.
func (d *Dict) Has(name string) bool {
	_, ok := d.vals[name]
	return ok
}

// Keys returns the tag names in insertion order.
func (d *Dict) Keys() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Len reports the number of tags in the dict.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.order)
}

// String renders the dict as space-separated Zinc tags, in the form the
// emitter writes a grid-info or column-info line (spec.md §4.5.4): a
// Marker prints as its bare name, a Str value is quoted, anything else
// uses its own canonical String().
func (d *Dict) String() string {
	if d == nil {
		return ""
	}
	out := make([]byte, 0, 64)
	for i, k := range d.order {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, stringifyTag(k, d.vals[k])...)
	}
	return string(out)
}

func stringifyTag(name string, v Scalar) string {
	switch v.Kind() {
	case KindMarker:
		return name
	case KindStr:
		return name + ":" + quoteZincStr(v.StrVal())
	default:
		return name + ":" + v.String()
	}
}

// Clone returns an independent copy of the dict (same keys/values, new
// backing slice/map) so GridBuilder can hand out a meta dict that callers
// cannot mutate out from under a built Grid.
func (d *Dict) Clone() *Dict {
	if d == nil {
		return NewDict()
	}
	nd := &Dict{order: append([]string(nil), d.order...), vals: make(map[string]Scalar, len(d.vals))}
	for k, v := range d.vals {
		nd.vals[k] = v
	}
	return nd
}
