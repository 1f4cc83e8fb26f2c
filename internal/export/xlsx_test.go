package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/campus-ops/distance-cli/internal/fetcher"
	"github.com/campus-ops/distance-cli/internal/model"
)

func f64(v float64) *float64 { return &v }

func TestWriteXLSX(t *testing.T) {
	table := &fetcher.Table{
		Header: []string{"이름", "집주소"},
		Rows: [][]string{
			{"홍길동", "제주시 아라일동, 101동"},
			{"김철수", ""},
		},
	}
	results := []model.RowResult{
		{
			Index:      0,
			RawAddress: "제주시 아라일동, 101동",
			Latitude:   f64(33.4996),
			Longitude:  f64(126.5312),
			DistanceKM: f64(445.4612),
			Score:      70,
		},
		{
			Index:        1,
			RawAddress:   "",
			Score:        0,
			ErrorMessage: "no address information",
		},
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteXLSX(path, table, results))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	sheet := f.Sheets[0]
	require.Len(t, sheet.Rows, 3)

	header := sheet.Rows[0]
	require.Len(t, header.Cells, 7)
	assert.Equal(t, "집주소", header.Cells[1].String())
	assert.Equal(t, "latitude", header.Cells[2].String())
	assert.Equal(t, "error_message", header.Cells[6].String())

	first := sheet.Rows[1]
	assert.Equal(t, "홍길동", first.Cells[0].String())
	lat, err := first.Cells[2].Float()
	require.NoError(t, err)
	assert.InDelta(t, 33.4996, lat, 1e-6)
	dist, err := first.Cells[4].Float()
	require.NoError(t, err)
	assert.InDelta(t, 445.4612, dist, 1e-6)
	score, err := first.Cells[5].Int()
	require.NoError(t, err)
	assert.Equal(t, 70, score)
	assert.Empty(t, first.Cells[6].String())

	second := sheet.Rows[2]
	assert.Empty(t, second.Cells[2].String(), "absent latitude stays blank")
	assert.Empty(t, second.Cells[4].String(), "absent distance stays blank")
	score, err = second.Cells[5].Int()
	require.NoError(t, err)
	assert.Equal(t, 0, score)
	assert.Equal(t, "no address information", second.Cells[6].String())
}

func TestWriteXLSX_PadsShortRows(t *testing.T) {
	table := &fetcher.Table{
		Header: []string{"이름", "집주소", "학년"},
		Rows:   [][]string{{"홍길동"}},
	}
	results := []model.RowResult{{Index: 0, ErrorMessage: "no address information"}}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteXLSX(path, table, results))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	row := f.Sheets[0].Rows[1]
	require.Len(t, row.Cells, 8)
	assert.Equal(t, "no address information", row.Cells[7].String())
}

func TestWriteXLSX_LengthMismatch(t *testing.T) {
	table := &fetcher.Table{Header: []string{"집주소"}, Rows: [][]string{{"a"}, {"b"}}}

	err := WriteXLSX(filepath.Join(t.TempDir(), "out.xlsx"), table, nil)
	assert.Error(t, err)
}
