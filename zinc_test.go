package zinc_test

import (
	"testing"

	zinc "github.com/bacnetic/zinc"
	"github.com/stretchr/testify/require"
)

func TestReadFileSimpleSeries(t *testing.T) {
	g, err := zinc.ReadFile("testdata/simple_series.zinc")
	require.NoError(t, err)
	require.Equal(t, 3, g.Version())
	require.Equal(t, 3, g.NumRows())

	series, ok := g.Series()
	require.True(t, ok)
	require.Len(t, series, 3)
}

func TestReadFileSentinels(t *testing.T) {
	g, err := zinc.ReadFile("testdata/sentinels.zinc")
	require.NoError(t, err)
	require.Equal(t, 3, g.NumRows())
	rows := g.Rows()
	require.True(t, rows[0][1].BoolVal() == false)
	require.True(t, rows[1][0].HasTZ())
}

func TestReadFileErrorGrid(t *testing.T) {
	_, err := zinc.ReadFile("testdata/error_grid.zinc")
	require.Error(t, err)
	require.True(t, zinc.KindOf(err, zinc.ErrorGrid))
}

func TestWriteZincRoundTrip(t *testing.T) {
	g, err := zinc.ReadFile("testdata/simple_series.zinc")
	require.NoError(t, err)

	dir := t.TempDir()
	path := dir + "/out.zinc"
	require.NoError(t, zinc.WriteZinc(g, path))

	g2, err := zinc.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, g.NumRows(), g2.NumRows())
}
