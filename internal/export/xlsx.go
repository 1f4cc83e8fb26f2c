// Package export writes the scored result workbook.
package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/campus-ops/distance-cli/internal/fetcher"
	"github.com/campus-ops/distance-cli/internal/model"
)

const sheetName = "distance results"

// resultColumns are appended after the input table's own columns.
var resultColumns = []string{"latitude", "longitude", "distance_km", "score", "error_message"}

// WriteXLSX writes the input table augmented with one result column set
// per row, preserving row order. results must be index-aligned with
// t.Rows.
func WriteXLSX(path string, t *fetcher.Table, results []model.RowResult) error {
	if len(results) != len(t.Rows) {
		return eris.Errorf("export: %d results for %d rows", len(results), len(t.Rows))
	}

	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range t.Header {
		header.AddCell().SetString(h)
	}
	for _, h := range resultColumns {
		header.AddCell().SetString(h)
	}

	for i, row := range t.Rows {
		out := sheet.AddRow()
		for _, cell := range row {
			out.AddCell().SetString(cell)
		}
		// Pad short rows so result columns line up.
		for j := len(row); j < len(t.Header); j++ {
			out.AddCell()
		}

		r := results[i]
		addFloatCell(out, r.Latitude)
		addFloatCell(out, r.Longitude)
		addFloatCell(out, r.DistanceKM)
		out.AddCell().SetInt(r.Score)
		out.AddCell().SetString(r.ErrorMessage)
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "export: save file")
	}
	return nil
}

func addFloatCell(row *xlsx.Row, v *float64) {
	cell := row.AddCell()
	if v != nil {
		cell.SetFloatWithFormat(*v, "0.0000")
	}
}
