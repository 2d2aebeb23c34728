package convert

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub-app/studydata-go/pkg/studydata/models"
	"github.com/studyhub-app/studydata-go/pkg/studydata/sample"
)

func TestToJSON_DropsEmptyRows(t *testing.T) {
	ds := models.NewDataset()
	ds.Set("Topics", []string{"topic_id", "topic_name"}, []models.Row{
		{"topic_id": "t1", "topic_name": "First"},
		{"topic_id": "", "topic_name": ""}, // trailing spreadsheet row
		{"topic_id": "t2", "topic_name": "Second"},
	})

	data, err := ToJSON(ds, false)
	require.NoError(t, err)

	var doc map[string][]map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc["Topics"], 2)
	assert.Equal(t, "t1", doc["Topics"][0]["topic_id"])
	assert.Equal(t, "t2", doc["Topics"][1]["topic_id"])
}

func TestToJSON_EmptyHeaderPlaceholder(t *testing.T) {
	ds := models.NewDataset()
	ds.Set("Sheet", []string{"name", ""}, []models.Row{
		{"name": "a", "": "x"},
	})

	data, err := ToJSON(ds, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Sheet":[{"name":"a","col_1":"x"}]}`, string(data))
}

func TestToJSON_NormalizesHeadersAndFillsMissingCells(t *testing.T) {
	ds := models.NewDataset()
	ds.Set("Sheet", []string{"Subject ID", "Name"}, []models.Row{
		{"Subject ID": "s1"}, // Name cell missing entirely
	})

	data, err := ToJSON(ds, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Sheet":[{"subject_id":"s1","name":""}]}`, string(data))
}

func TestToJSON_PreservesTableOrder(t *testing.T) {
	ds := models.NewDataset()
	ds.Set("Zebra", []string{"a"}, []models.Row{{"a": "1"}})
	ds.Set("Apple", []string{"a"}, []models.Row{{"a": "2"}})

	data, err := ToJSON(ds, false)
	require.NoError(t, err)
	assert.Equal(t, `{"Zebra":[{"a":"1"}],"Apple":[{"a":"2"}]}`, string(data))
}

func TestRoundTrip(t *testing.T) {
	ds := sample.Dataset()

	data, err := ToJSON(ds, false)
	require.NoError(t, err)

	got, err := FromJSON(data)
	require.NoError(t, err)

	require.Equal(t, ds.Names(), got.Names())
	for _, name := range ds.Names() {
		want := ds.Sheet(name)
		have := got.Sheet(name)
		require.Equal(t, want.Columns, have.Columns, "table %s column order", name)
		require.Len(t, have.Rows, len(want.Rows), "table %s row count", name)
		for i, row := range want.Rows {
			assert.Equal(t, row, have.Rows[i], "table %s row %d", name, i)
		}
	}
}

func TestFromJSON_ScalarTyping(t *testing.T) {
	doc := `{"T":[{"i":30,"f":1.5,"s":"text","n":null,"b":true}]}`

	ds, err := FromJSON([]byte(doc))
	require.NoError(t, err)

	row := ds.Rows("T")[0]
	assert.Equal(t, int64(30), row["i"])
	assert.Equal(t, 1.5, row["f"])
	assert.Equal(t, "text", row["s"])
	assert.Equal(t, "", row["n"])
	assert.Equal(t, true, row["b"])
	assert.Equal(t, []string{"i", "f", "s", "n", "b"}, ds.Sheet("T").Columns)
}

func TestFromJSON_RejectsNestedValues(t *testing.T) {
	_, err := FromJSON([]byte(`{"T":[{"a":[1,2]}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nested values")
}

func TestFromJSON_RejectsNonObjectRoot(t *testing.T) {
	_, err := FromJSON([]byte(`[1,2,3]`))
	require.Error(t, err)
}

func TestToJSON_PrettyGolden(t *testing.T) {
	ds := models.NewDataset()
	ds.Set("Subjects", []string{"subject_id", "subject_key", "name"}, []models.Row{
		{"subject_id": "phys-001", "subject_key": "physics", "name": "Physics"},
		{"subject_id": "math-001", "subject_key": "math", "name": "Mathematics"},
	})
	ds.Set("Topics", []string{"topic_id", "subject_key", "topic_name", "duration_minutes"}, []models.Row{
		{"topic_id": "phys-t1", "subject_key": "physics", "topic_name": "Newton's Laws", "duration_minutes": int64(30)},
	})

	data, err := ToJSON(ds, true)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "export_pretty", data)
}
