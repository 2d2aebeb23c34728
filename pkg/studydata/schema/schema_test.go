package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Subject ID", "subject_id"},
		{"subject_id", "subject_id"},
		{"TOPIC NAME", "topic_name"},
		{"Content Type", "content_type"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestLookup(t *testing.T) {
	tbl, ok := Lookup(QuizQuestions)
	require.True(t, ok)
	assert.Equal(t, QuizQuestions, tbl.Name)
	assert.Contains(t, tbl.Required, "option_a")
	assert.Contains(t, tbl.Required, "correct_answer")

	_, ok = Lookup("Nonexistent")
	assert.False(t, ok)
}

func TestRegistryShape(t *testing.T) {
	require.Len(t, Tables, 9)
	assert.Equal(t, Subjects, Tables[0].Name)
	assert.Equal(t, Achievements, Tables[8].Name)

	// Required columns must be a subset of the declared columns.
	for _, tbl := range Tables {
		cols := make(map[string]bool, len(tbl.Columns))
		for _, c := range tbl.Columns {
			cols[c] = true
		}
		for _, req := range tbl.Required {
			assert.True(t, cols[req], "%s: required column %q not declared", tbl.Name, req)
		}
	}
}

func TestVocabularies(t *testing.T) {
	assert.Len(t, ContentTypes, 9)
	assert.Len(t, SectionTypes, 5)
	assert.Len(t, HandoutContentTypes, 6)

	assert.True(t, ValidContentType("concept_helper"))
	assert.False(t, ValidContentType("joke"))
	assert.True(t, ValidSectionType("quiz"))
	assert.False(t, ValidSectionType("appendix"))
	assert.True(t, ValidIcon("BookOpen"))
	assert.False(t, ValidIcon("Sparkles"))

	// Handout-class types are content types too, minus the narrative ones.
	for _, h := range HandoutContentTypes {
		assert.True(t, ValidContentType(h), "handout type %q missing from content types", h)
	}
	assert.False(t, HandoutContentType("text"))
	assert.False(t, HandoutContentType("introduction"))
	assert.True(t, HandoutContentType("flowchart"))
}
