package fetcher

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func writeSheet(t *testing.T, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("applicants")
	require.NoError(t, err)
	for _, row := range rows {
		r := sheet.AddRow()
		for _, cell := range row {
			r.AddCell().SetString(cell)
		}
	}
	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeSheet(t, [][]string{
		{"이름", "집주소", "학년"},
		{"홍길동", "서울시 구로구, 101동", "1"},
		{"김철수", "부산시 해운대구", "2"},
	})

	table, err := ReadXLSX(path, XLSXOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"이름", "집주소", "학년"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "서울시 구로구, 101동", table.Rows[0][1])
}

func TestReadXLSX_MissingFile(t *testing.T) {
	_, err := ReadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"), XLSXOptions{})
	assert.Error(t, err)
}

func TestReadXLSX_NoHeader(t *testing.T) {
	path := writeSheet(t, nil)

	_, err := ReadXLSX(path, XLSXOptions{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestReadXLSX_SheetNameNotFound(t *testing.T) {
	path := writeSheet(t, [][]string{{"집주소"}})

	_, err := ReadXLSX(path, XLSXOptions{SheetName: "missing"})
	assert.Error(t, err)
}

func TestColumn_PadsShortRows(t *testing.T) {
	path := writeSheet(t, [][]string{
		{"이름", "집주소"},
		{"홍길동", "서울시 구로구"},
		{"김철수"},
	})

	table, err := ReadXLSX(path, XLSXOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"서울시 구로구", ""}, table.Column(1))
}

func TestResolveAddressColumn_SingleMatch(t *testing.T) {
	table := &Table{Header: []string{"이름", "집주소", "학년"}}

	idx, err := table.ResolveAddressColumn("집주소", "")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestResolveAddressColumn_MarkerAsSubstring(t *testing.T) {
	table := &Table{Header: []string{"이름", "학생 집주소 (도로명)", "학년"}}

	idx, err := table.ResolveAddressColumn("집주소", "")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestResolveAddressColumn_NotFound(t *testing.T) {
	table := &Table{Header: []string{"이름", "학년"}}

	_, err := table.ResolveAddressColumn("집주소", "")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestResolveAddressColumn_Ambiguous(t *testing.T) {
	table := &Table{Header: []string{"집주소", "보호자 집주소"}}

	_, err := table.ResolveAddressColumn("집주소", "")
	assert.ErrorIs(t, err, ErrAmbiguousColumn)
	assert.Contains(t, err.Error(), "보호자 집주소")
}

func TestResolveAddressColumn_Explicit(t *testing.T) {
	table := &Table{Header: []string{"집주소", "보호자 집주소"}}

	idx, err := table.ResolveAddressColumn("집주소", "보호자 집주소")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestResolveAddressColumn_ExplicitMissing(t *testing.T) {
	table := &Table{Header: []string{"집주소"}}

	_, err := table.ResolveAddressColumn("집주소", "주소2")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}
