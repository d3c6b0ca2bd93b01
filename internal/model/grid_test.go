package model

import "testing"

func buildTestGrid(t *testing.T, colCount int) *Grid {
	t.Helper()
	b := NewGridBuilder(3)
	require := func(err error) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require(b.AddCol("ts", nil))
	for i := 1; i < colCount; i++ {
		require(b.AddCol("v"+string(rune('0'+i)), nil))
	}
	row := make([]Scalar, colCount)
	row[0] = NewDate(2024, 6, 1)
	for i := 1; i < colCount; i++ {
		row[i] = Float(float64(i), "")
	}
	require(b.AddRow(row))
	g, err := b.Build()
	require(err)
	return g
}

func TestGridSeriesRequiresExactlyTwoColumns(t *testing.T) {
	g := buildTestGrid(t, 2)
	series, ok := g.Series()
	if !ok || len(series) != 1 {
		t.Fatalf("expected a 1-cell series for a ts+1 grid")
	}

	g3 := buildTestGrid(t, 3)
	if _, ok := g3.Series(); ok {
		t.Fatalf("Series() must report false for a 3-column grid")
	}
}

func TestGridTimeIndexReadsFirstColumn(t *testing.T) {
	g := buildTestGrid(t, 2)
	idx := g.TimeIndex()
	if len(idx) != 1 || idx[0].Kind() != KindDate {
		t.Fatalf("TimeIndex() should surface the first column's cells")
	}
	if _, ok := g.Column("ts"); !ok {
		t.Fatalf("ts must remain an ordinary column, not be popped out")
	}
}

func TestGridRowsAreDefensiveCopies(t *testing.T) {
	g := buildTestGrid(t, 2)
	rows := g.Rows()
	rows[0][0] = Marker()
	if again := g.Rows(); again[0][0].Kind() != KindDate {
		t.Fatalf("mutating a returned row slice must not affect the grid")
	}
}

func TestGridColumnLookupMiss(t *testing.T) {
	g := buildTestGrid(t, 2)
	if _, ok := g.Column("nope"); ok {
		t.Fatalf("Column() should report false for an unknown name")
	}
}

func TestGridWithVersionRewritesVersion(t *testing.T) {
	g := buildTestGrid(t, 2)
	g2, err := g.WithVersion(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g2.Version() != 2 {
		t.Fatalf("Version() = %d, want 2", g2.Version())
	}
	if g.Version() != 3 {
		t.Fatalf("WithVersion must not mutate the receiver, got Version() = %d", g.Version())
	}
}

func TestGridWithVersionRejectsUnsupported(t *testing.T) {
	g := buildTestGrid(t, 2)
	if _, err := g.WithVersion(4); err == nil {
		t.Fatalf("expected an error for an unsupported version")
	}
}
