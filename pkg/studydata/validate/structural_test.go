package validate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub-app/studydata-go/pkg/studydata/models"
	"github.com/studyhub-app/studydata-go/pkg/studydata/sample"
	"github.com/studyhub-app/studydata-go/pkg/studydata/schema"
)

func TestValidate_CleanDataset(t *testing.T) {
	res := Validate(sample.Dataset())
	assert.True(t, res.OK())
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestValidate_MissingSheets(t *testing.T) {
	res := Validate(models.NewDataset())

	assert.False(t, res.OK())
	require.Len(t, res.Errors, len(schema.Tables))
	for _, tbl := range schema.Tables {
		assert.Contains(t, res.Errors, fmt.Sprintf("Missing required sheet: %s", tbl.Name))
	}
	assert.Empty(t, res.Warnings)
}

func TestValidate_MissingRequiredColumn(t *testing.T) {
	ds := sample.Dataset()
	ds.Set(schema.Subjects, []string{"subject_id", "name"}, ds.Rows(schema.Subjects))

	res := Validate(ds)
	assert.False(t, res.OK())
	assert.Contains(t, res.Errors, "Subjects: Missing required column 'subject_key'")
}

func TestValidate_RawHeadersAreNormalized(t *testing.T) {
	ds := sample.Dataset()
	ds.Set(schema.Achievements, []string{"Achievement ID", "Icon", "Name", "Description"},
		nil)

	res := Validate(ds)
	assert.True(t, res.OK(), "case and spacing differences must not fail required-column checks")
}

func TestValidate_EmptyTableIsWarningOnly(t *testing.T) {
	ds := sample.Dataset()
	ds.Set(schema.Formulas, ds.Sheet(schema.Formulas).Columns, nil)

	res := Validate(ds)
	assert.True(t, res.OK())
	assert.Contains(t, res.Warnings, "Formulas: No data rows found")
}

func TestValidate_InvalidContentType(t *testing.T) {
	ds := sample.Dataset()
	sheet := ds.Sheet(schema.StudyContent)
	sheet.Rows = append(sheet.Rows, models.Row{
		"content_id": "cont-x-1", "section_id": "phys-t1-s2",
		"content_type": "joke", "content_text": "why did the atom...",
	})

	res := Validate(ds)
	assert.True(t, res.OK(), "unknown content_type is a warning, not an error")
	require.Len(t, res.Warnings, 1)

	warning := res.Warnings[0]
	assert.Contains(t, warning, fmt.Sprintf("Study_Content row %d", len(sheet.Rows)+1))
	assert.Contains(t, warning, "Invalid content_type 'joke'")
	for _, ct := range schema.ContentTypes {
		assert.Contains(t, warning, ct, "warning must list every valid content type")
	}
}

func TestValidate_UnknownIcon(t *testing.T) {
	ds := sample.Dataset()
	ds.Rows(schema.Subjects)[0]["icon"] = "Sparkles"

	res := Validate(ds)
	assert.True(t, res.OK())
	assert.Contains(t, res.Warnings, "Subjects row 2: Unknown icon 'Sparkles'")
}

func TestValidate_SectionIconChecked(t *testing.T) {
	ds := sample.Dataset()
	ds.Rows(schema.TopicSections)[0]["section_icon"] = "DoesNotExist"

	res := Validate(ds)
	assert.True(t, res.OK())
	assert.Contains(t, res.Warnings, "Topic_Sections row 2: Unknown icon 'DoesNotExist'")
}

func TestValidate_EmptyEnumCellsIgnored(t *testing.T) {
	ds := sample.Dataset()
	ds.Rows(schema.Subjects)[0]["icon"] = ""
	ds.Rows(schema.StudyContent)[0]["content_type"] = ""

	res := Validate(ds)
	assert.Empty(t, res.Warnings, "empty enum cells are not flagged")
}
