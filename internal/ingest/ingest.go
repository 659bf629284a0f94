// Package ingest reads the raw sales table from CSV or XLSX sources.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/config"
	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/model"
)

// requiredColumns are the named fields every input table must carry.
var requiredColumns = []string{"state", "sales_method", "revenue", "years_as_customer"}

// InputMissingError reports that the input file does not exist at the
// expected location.
type InputMissingError struct {
	Path string
}

func (e *InputMissingError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

// Load reads the sales table described by cfg. The format is taken from
// cfg.Format, falling back to the file extension. Row count matches the
// source table; no rows are dropped.
func Load(cfg config.InputConfig) ([]model.Sale, error) {
	if _, err := os.Stat(cfg.Path); err != nil {
		if os.IsNotExist(err) {
			return nil, &InputMissingError{Path: cfg.Path}
		}
		return nil, eris.Wrap(err, "ingest: stat input")
	}

	format := cfg.Format
	if format == "" {
		switch strings.ToLower(filepath.Ext(cfg.Path)) {
		case ".xlsx":
			format = "xlsx"
		default:
			format = "csv"
		}
	}

	switch format {
	case "csv":
		return ParseSalesCSV(cfg.Path)
	case "xlsx":
		return ParseSalesXLSX(cfg.Path, cfg.Sheet)
	default:
		return nil, eris.Errorf("ingest: unsupported input format %q", format)
	}
}

// rowsToSales converts header-addressed rows into Sale records.
func rowsToSales(header []string, rows [][]string) ([]model.Sale, error) {
	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		colIdx[strings.TrimSpace(col)] = i
	}

	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, eris.Errorf("ingest: missing required column %q", col)
		}
	}

	sales := make([]model.Sale, 0, len(rows))
	for i, row := range rows {
		sale, err := parseSale(row, colIdx)
		if err != nil {
			// Header is row 1, so data row i is line i+2.
			return nil, eris.Wrapf(err, "ingest: row %d", i+2)
		}
		sales = append(sales, sale)
	}

	return sales, nil
}

func parseSale(row []string, colIdx map[string]int) (model.Sale, error) {
	var sale model.Sale

	sale.State = getCol(row, colIdx, "state")
	sale.Method = getCol(row, colIdx, "sales_method")

	if raw := getCol(row, colIdx, "revenue"); raw != "" {
		revenue, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return sale, eris.Wrapf(err, "parse revenue %q", raw)
		}
		sale.Revenue = &revenue
	}

	rawYears := getCol(row, colIdx, "years_as_customer")
	years, err := strconv.Atoi(rawYears)
	if err != nil {
		// XLSX numeric cells may stringify with a decimal point.
		f, ferr := strconv.ParseFloat(rawYears, 64)
		if ferr != nil {
			return sale, eris.Wrapf(err, "parse years_as_customer %q", rawYears)
		}
		years = int(f)
	}
	sale.YearsAsCustomer = years

	return sale, nil
}

// getCol safely retrieves a column value from a row.
func getCol(row []string, colIdx map[string]int, col string) string {
	idx, ok := colIdx[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
