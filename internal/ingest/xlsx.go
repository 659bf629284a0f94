package ingest

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/model"
)

// ParseSalesXLSX reads a sales XLSX sheet and returns one Sale per data
// row. An empty sheet name selects the first sheet. The first row must
// be a header naming the required columns.
func ParseSalesXLSX(path, sheetName string) ([]model.Sale, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}

	sheet, err := getSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	if len(sheet.Rows) < 2 {
		return nil, eris.New("xlsx: no data rows")
	}

	header := rowToStrings(sheet.Rows[0])
	rows := make([][]string, 0, len(sheet.Rows)-1)
	for _, row := range sheet.Rows[1:] {
		rows = append(rows, rowToStrings(row))
	}

	return rowsToSales(header, rows)
}

func getSheet(f *xlsx.File, name string) (*xlsx.Sheet, error) {
	if name != "" {
		sheet, ok := f.Sheet[name]
		if !ok {
			return nil, eris.Errorf("xlsx: sheet %q not found", name)
		}
		return sheet, nil
	}

	if len(f.Sheets) == 0 {
		return nil, eris.New("xlsx: file has no sheets")
	}
	return f.Sheets[0], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
