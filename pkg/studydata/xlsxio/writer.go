package xlsxio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/studyhub-app/studydata-go/pkg/studydata/models"
	"github.com/studyhub-app/studydata-go/pkg/studydata/schema"
)

const maxColumnWidth = 50

// Save writes the dataset to an xlsx workbook, one sheet per table in
// dataset order, with a styled header row and auto-sized columns.
func Save(path string, ds *models.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: thinBorders()})
	if err != nil {
		return fmt.Errorf("cell style: %w", err)
	}

	for i, name := range ds.Names() {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
		if err := writeSheet(f, name, ds.Sheet(name), headerStyle, cellStyle); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
	}

	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, name string, sheet *models.Sheet, headerStyle, cellStyle int) error {
	cols := sheet.Columns
	if len(cols) == 0 {
		if tbl, ok := schema.Lookup(name); ok {
			cols = tbl.Columns
		}
	}
	if len(cols) == 0 {
		return nil
	}

	for c, col := range cols {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, col); err != nil {
			return err
		}
	}

	for r, row := range sheet.Rows {
		for c, col := range cols {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			v := row[col]
			if v == nil {
				v = ""
			}
			if err := f.SetCellValue(name, cell, v); err != nil {
				return err
			}
		}
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(cols), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", lastHeader, headerStyle); err != nil {
		return err
	}
	if len(sheet.Rows) > 0 {
		lastCell, err := excelize.CoordinatesToCellName(len(cols), len(sheet.Rows)+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(name, "A2", lastCell, cellStyle); err != nil {
			return err
		}
	}

	return sizeColumns(f, name, cols, sheet.Rows)
}

// sizeColumns widens each column to fit its longest value, capped at
// maxColumnWidth.
func sizeColumns(f *excelize.File, name string, cols []string, rows []models.Row) error {
	for c, col := range cols {
		longest := len(col)
		for _, row := range rows {
			if n := len(row.String(col)); n > longest {
				longest = n
			}
		}
		width := float64(longest + 2)
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		colName, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, colName, colName, width); err != nil {
			return err
		}
	}
	return nil
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}
