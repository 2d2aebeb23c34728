// Package xlsxio reads and writes StudyHub workbooks.
package xlsxio

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/studyhub-app/studydata-go/pkg/studydata/models"
	"github.com/studyhub-app/studydata-go/pkg/studydata/schema"
)

// Load reads a workbook into a dataset, one table per sheet in workbook
// order. Headers come from row 1, normalized; an empty header cell becomes a
// positional col_<index> placeholder. Cell values are typed as int64,
// float64, or string; empty cells are "".
func Load(path string) (*models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	ds := models.NewDataset()
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}
		cols, data := parseSheet(rows)
		ds.Set(sheetName, cols, data)
	}
	return ds, nil
}

// parseSheet splits raw sheet rows into a normalized header and typed data
// rows. Every data row carries every header column so field sets stay
// uniform; cells beyond the header width are dropped.
func parseSheet(raw [][]string) ([]string, []models.Row) {
	if len(raw) == 0 {
		return nil, nil
	}

	cols := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		if h == "" {
			cols[i] = "col_" + strconv.Itoa(i)
		} else {
			cols[i] = schema.Normalize(h)
		}
	}

	var rows []models.Row
	for _, cells := range raw[1:] {
		row := make(models.Row, len(cols))
		for i, col := range cols {
			if i < len(cells) {
				row[col] = parseValue(cells[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return cols, rows
}

// parseValue attempts to parse a cell as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
