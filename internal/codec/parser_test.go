package codec

import (
	"math"
	"testing"

	"github.com/bacnetic/zinc/internal/model"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyInputIsParseError(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
	require.True(t, model.IsKind(err, model.ParseError))
}

func TestParseNoColumnsIsParseError(t *testing.T) {
	_, err := Parse("ver:\"3.0\"\n")
	require.Error(t, err)
	require.True(t, model.IsKind(err, model.ParseError))
}

func TestParseUnsupportedVersionIsParseError(t *testing.T) {
	_, err := Parse("ver:\"1.0\"\nts\n")
	require.Error(t, err)
	require.True(t, model.IsKind(err, model.ParseError))
}

func TestParseTrailingCommaYieldsNullCell(t *testing.T) {
	g, err := Parse("ver:\"3.0\"\nts,v0\n2024-01-01,\n")
	require.NoError(t, err)
	rows := g.Rows()
	require.Len(t, rows, 1)
	require.True(t, rows[0][1].IsMissing())
}

func TestParseDatetimeWithoutZoneHasNoTZ(t *testing.T) {
	g, err := Parse("ver:\"3.0\"\nts\n2024-03-01T00:00:00+00:00\n")
	require.NoError(t, err)
	cell := g.Rows()[0][0]
	require.False(t, cell.HasTZ())
}

// S4: sentinels in row data.
func TestParseSentinelsInRowData(t *testing.T) {
	input := `ver:"3.0" hisEnd:M hisStart:M
ts,v0 id:@x,v1 id:@y
2018-03-21T15:45:00+10:00 GMT-10,F,INF
2018-03-21T15:50:00+10:00 GMT-10,N,NA
2018-03-21T15:55:00+10:00 GMT-10,T,NaN
`
	g, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, 3, g.NumRows())

	rows := g.Rows()
	require.Equal(t, false, rows[0][1].BoolVal())
	require.True(t, rows[1][1].IsMissing())
	require.Equal(t, true, rows[2][1].BoolVal())

	require.True(t, math.IsInf(rows[0][2].Float64(), 1))
	require.True(t, rows[1][2].Kind() == model.KindNA)
	require.True(t, rows[2][2].IsNaN())
}

// S5: error grid.
func TestParseErrorGrid(t *testing.T) {
	input := `ver:"3.0" errType:"sys::NullErr" err errTrace:"boom" dis:"failed"
empty
`
	_, err := Parse(input)
	require.Error(t, err)
	require.True(t, model.IsKind(err, model.ErrorGrid))
}

// S6: round trip a single-series grid.
func TestParseEmitRoundTrip(t *testing.T) {
	input := "ver:\"3.0\"\nts,v0\n2024-01-01T00:00:00+00:00 UTC,68.5\n2024-01-02T00:00:00+00:00 UTC,70.1\n"
	g, err := Parse(input)
	require.NoError(t, err)

	text, err := g.ToZinc()
	require.NoError(t, err)

	g2, err := Parse(text)
	require.NoError(t, err)

	require.Equal(t, g.Version(), g2.Version())
	require.Equal(t, g.NumCols(), g2.NumCols())
	rows1, rows2 := g.Rows(), g2.Rows()
	require.Equal(t, len(rows1), len(rows2))
	for i := range rows1 {
		for j := range rows1[i] {
			require.True(t, rows1[i][j].Equal(rows2[i][j]), "row %d cell %d: %v != %v", i, j, rows1[i][j], rows2[i][j])
		}
	}
}

// Regression for a round-trip bug: a grid-info Str tag carrying a
// pass-through escape must not gain an extra backslash each time it is
// emitted and re-parsed (spec.md §8 property 1, §9 escape pass-through).
func TestParseEmitRoundTripPreservesStringEscape(t *testing.T) {
	input := "ver:\"3.0\" dis:\"line1\\nline2\"\nts\n2024-01-01\n"
	g, err := Parse(input)
	require.NoError(t, err)
	dis, ok := g.Meta().Get("dis")
	require.True(t, ok)
	require.Equal(t, `line1\nline2`, dis.StrVal())

	text, err := g.ToZinc()
	require.NoError(t, err)

	g2, err := Parse(text)
	require.NoError(t, err)
	dis2, ok := g2.Meta().Get("dis")
	require.True(t, ok)
	require.Equal(t, dis.StrVal(), dis2.StrVal(), "re-emitting must not accumulate extra backslashes")
}

func TestParseRowWithTooManyCellsIsError(t *testing.T) {
	_, err := Parse("ver:\"3.0\"\nts\n2024-01-01,extra\n")
	require.Error(t, err)
}

func TestParseNegInf(t *testing.T) {
	g, err := Parse("ver:\"3.0\"\nv0\n-INF\n")
	require.NoError(t, err)
	cell := g.Rows()[0][0]
	require.True(t, math.IsInf(cell.Float64(), -1))
}

func TestParseHexLiteralIsUnsupported(t *testing.T) {
	_, err := Parse("ver:\"3.0\"\nv0\n0x1A\n")
	require.Error(t, err)
	require.True(t, model.IsKind(err, model.Unsupported))
}

func TestParseListValueIsUnsupported(t *testing.T) {
	_, err := Parse("ver:\"3.0\"\nv0\n[1,2]\n")
	require.Error(t, err)
	require.True(t, model.IsKind(err, model.Unsupported))
}

func TestParseRefWithDisplayName(t *testing.T) {
	input := `ver:"3.0"
v0
@p:q01b001:r:0197767d-c51944e4 "Building One"
`
	g, err := Parse(input)
	require.NoError(t, err)
	cell := g.Rows()[0][0]
	require.Equal(t, model.KindRef, cell.Kind())
	ref := cell.RefVal()
	require.Equal(t, "p:q01b001:r:0197767d-c51944e4", ref.UID)
	require.True(t, ref.HasDisplay)
	require.Equal(t, "Building One", ref.Display)
}

func TestParseCoordValue(t *testing.T) {
	g, err := Parse("ver:\"3.0\"\nv0\nC(37.545,-122.671)\n")
	require.NoError(t, err)
	c := g.Rows()[0][0].CoordVal()
	require.InDelta(t, 37.545, c.Lat, 1e-9)
	require.InDelta(t, -122.671, c.Lng, 1e-9)
}
