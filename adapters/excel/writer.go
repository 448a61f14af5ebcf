// Package excel exports merged and scored tables as .xlsx workbooks.
package excel

import (
	"io"

	"fairdex/domain/table"
	"fairdex/internal/errors"
	"fairdex/internal/score"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// WriteMerged writes a merged table as a workbook: identifying columns
// first, one column per indicator. Missing cells stay blank.
func WriteMerged(w io.Writer, m table.Merged) error {
	f := excelize.NewFile()
	defer f.Close()

	headers := append([]string{"country", "country_iso3", "year"}, m.Columns...)
	if err := writeHeader(f, headers); err != nil {
		return err
	}

	for i, row := range m.Rows {
		cells := make([]interface{}, 0, len(headers))
		cells = append(cells, row.Country, row.ISO3, row.Year)
		for _, col := range m.Columns {
			if v, ok := row.Value(col); ok {
				cells = append(cells, v)
			} else {
				cells = append(cells, nil)
			}
		}
		if err := writeRow(f, i+2, cells); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}
	return nil
}

// WriteScores writes the full scored table: identifying columns, the
// fairness score, then raw and normalized values per component.
func WriteScores(w io.Writer, rows []score.Row, components []score.Component) error {
	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"country", "country_iso3", "year", "fairness_score"}
	for _, c := range components {
		headers = append(headers, c.Column)
	}
	for _, c := range components {
		headers = append(headers, c.NormColumn())
	}
	if err := writeHeader(f, headers); err != nil {
		return err
	}

	for i, row := range rows {
		cells := []interface{}{row.Country, row.ISO3, row.Year, row.FairnessScore}
		for _, c := range components {
			cells = append(cells, row.Raw[c.Column])
		}
		for _, c := range components {
			cells = append(cells, row.Normalized[c.NormColumn()])
		}
		if err := writeRow(f, i+2, cells); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}
	return nil
}

func writeHeader(f *excelize.File, headers []string) error {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return writeRow(f, 1, cells)
}

func writeRow(f *excelize.File, rowNum int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return errors.Wrap(err, "failed to compute cell coordinates")
	}
	if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
		return errors.Wrap(err, "failed to write sheet row")
	}
	return nil
}
