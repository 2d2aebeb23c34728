// Package validate checks datasets against the sheet registry and against the
// cross-table content coverage rules. Both validators accumulate every
// violation in one pass rather than stopping at the first.
package validate

import (
	"fmt"
	"strings"

	"github.com/studyhub-app/studydata-go/pkg/studydata/models"
	"github.com/studyhub-app/studydata-go/pkg/studydata/schema"
)

// Result accumulates the outcome of a structural validation pass. Errors make
// the dataset unusable; warnings are advisory.
type Result struct {
	Errors   []string
	Warnings []string
}

// OK reports whether validation passed. Warnings never fail a dataset.
func (r Result) OK() bool { return len(r.Errors) == 0 }

// iconColumns maps sheets with an icon-bearing column to that column's name.
var iconColumns = map[string]string{
	schema.Subjects:      "icon",
	schema.TopicSections: "section_icon",
	schema.Achievements:  "icon",
}

// Validate checks the dataset against the sheet registry: every registry
// sheet must be present with its required columns, and enum-valued cells must
// hold recognized values. Row numbers in messages are spreadsheet rows (the
// header is row 1).
func Validate(ds *models.Dataset) Result {
	var res Result

	for _, tbl := range schema.Tables {
		sheet := ds.Sheet(tbl.Name)
		if sheet == nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Missing required sheet: %s", tbl.Name))
			continue
		}

		headers := make(map[string]bool, len(sheet.Columns))
		for _, col := range sheet.Columns {
			headers[schema.Normalize(col)] = true
		}

		for _, required := range tbl.Required {
			if !headers[required] {
				res.Errors = append(res.Errors, fmt.Sprintf("%s: Missing required column '%s'", tbl.Name, required))
			}
		}

		if len(sheet.Rows) == 0 {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: No data rows found", tbl.Name))
		}

		if tbl.Name == schema.StudyContent && headers["content_type"] {
			for i, row := range sheet.Rows {
				v := row.String("content_type")
				if v != "" && !schema.ValidContentType(v) {
					res.Warnings = append(res.Warnings, fmt.Sprintf(
						"%s row %d: Invalid content_type '%s'. Valid: [%s]",
						tbl.Name, i+2, v, strings.Join(schema.ContentTypes, ", ")))
				}
			}
		}

		if iconCol, ok := iconColumns[tbl.Name]; ok && headers[iconCol] {
			for i, row := range sheet.Rows {
				v := row.String(iconCol)
				if v != "" && !schema.ValidIcon(v) {
					res.Warnings = append(res.Warnings, fmt.Sprintf(
						"%s row %d: Unknown icon '%s'", tbl.Name, i+2, v))
				}
			}
		}
	}

	return res
}
