package ingest

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"

	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/model"
)

// ParseSalesCSV reads a sales CSV and returns one Sale per data row.
// The first row must be a header naming the required columns; extra
// columns are ignored.
func ParseSalesCSV(path string) ([]model.Sale, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "csv: open file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "csv: read rows")
	}

	if len(records) < 2 {
		return nil, eris.New("csv: no data rows")
	}

	return rowsToSales(records[0], records[1:])
}
