// Package fetcher reads the input spreadsheet and locates the address
// column within it.
package fetcher

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// Pipeline-level column errors, surfaced before any row is processed.
var (
	// ErrColumnNotFound means no header cell contains the address marker.
	ErrColumnNotFound = eris.New("fetcher: address column not found")
	// ErrAmbiguousColumn means several header cells match the marker and
	// the caller must pick one explicitly.
	ErrAmbiguousColumn = eris.New("fetcher: multiple address columns match")
)

// Table is a parsed sheet: a header row plus data rows. Rows may be
// shorter than the header when trailing cells are empty.
type Table struct {
	Header []string
	Rows   [][]string
}

// XLSXOptions configures the XLSX parser.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
}

// ReadXLSX reads an XLSX file into a Table. The first row is the header.
func ReadXLSX(path string, opts XLSXOptions) (*Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: open file")
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, err
	}

	if len(sheet.Rows) == 0 {
		return nil, eris.Errorf("fetcher: sheet %q has no header row", sheet.Name)
	}

	t := &Table{Header: rowToStrings(sheet.Rows[0])}
	for _, row := range sheet.Rows[1:] {
		t.Rows = append(t.Rows, rowToStrings(row))
	}

	return t, nil
}

// Column returns the values of one column, one entry per data row, with
// "" for rows shorter than the column index.
func (t *Table) Column(idx int) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values
}

// ResolveAddressColumn finds the home-address column. If explicit is
// non-empty it must name a header exactly. Otherwise exactly one header
// containing the marker substring must exist; zero matches is
// ErrColumnNotFound and several is ErrAmbiguousColumn.
func (t *Table) ResolveAddressColumn(marker, explicit string) (int, error) {
	if explicit != "" {
		for i, h := range t.Header {
			if h == explicit {
				return i, nil
			}
		}
		return 0, eris.Wrapf(ErrColumnNotFound, "no column named %q", explicit)
	}

	var candidates []int
	for i, h := range t.Header {
		if strings.Contains(h, marker) {
			candidates = append(candidates, i)
		}
	}

	switch len(candidates) {
	case 0:
		return 0, eris.Wrapf(ErrColumnNotFound, "no header contains %q", marker)
	case 1:
		return candidates[0], nil
	default:
		names := make([]string, len(candidates))
		for i, c := range candidates {
			names[i] = t.Header[c]
		}
		return 0, eris.Wrapf(ErrAmbiguousColumn, "pick one of: %s", strings.Join(names, ", "))
	}
}

func getSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("fetcher: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}

	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("fetcher: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}

	return f.Sheets[opts.SheetIndex], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
