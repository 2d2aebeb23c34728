// Package schema declares the sheet registry for StudyHub workbooks: which
// sheets exist, which columns they carry, and which columns are mandatory.
package schema

import "strings"

// Sheet names as they appear in the workbook.
const (
	Subjects           = "Subjects"
	Topics             = "Topics"
	TopicSections      = "Topic_Sections"
	LearningObjectives = "Learning_Objectives"
	KeyTerms           = "Key_Terms"
	StudyContent       = "Study_Content"
	Formulas           = "Formulas"
	QuizQuestions      = "Quiz_Questions"
	Achievements       = "Achievements"
)

// Table describes one sheet: its column layout, the columns a dataset must
// provide, and a short description for the schema listing.
type Table struct {
	Name        string
	Columns     []string
	Required    []string
	Description string
}

// Tables lists every sheet in registry declaration order. Column names are
// already normalized (lowercase, underscores).
var Tables = []Table{
	{
		Name:        Subjects,
		Columns:     []string{"subject_id", "subject_key", "name", "icon", "color_hex", "light_bg", "gradient_from", "gradient_to", "dark_glow"},
		Required:    []string{"subject_id", "subject_key", "name"},
		Description: "Define subjects with their visual styling",
	},
	{
		Name:        Topics,
		Columns:     []string{"topic_id", "subject_key", "topic_name", "duration_minutes", "order_index"},
		Required:    []string{"topic_id", "subject_key", "topic_name"},
		Description: "List all topics per subject",
	},
	{
		Name:        TopicSections,
		Columns:     []string{"section_id", "topic_id", "section_title", "section_icon", "order_index", "section_type"},
		Required:    []string{"section_id", "topic_id", "section_title"},
		Description: "Define sections/chapters within each topic",
	},
	{
		Name:        LearningObjectives,
		Columns:     []string{"objective_id", "topic_id", "objective_text", "order_index"},
		Required:    []string{"objective_id", "topic_id", "objective_text"},
		Description: "Learning objectives for each topic",
	},
	{
		Name:        KeyTerms,
		Columns:     []string{"term_id", "topic_id", "term", "definition"},
		Required:    []string{"term_id", "topic_id", "term", "definition"},
		Description: "Vocabulary terms and definitions",
	},
	{
		Name: StudyContent,
		Columns: []string{"content_id", "section_id", "content_type", "content_title", "content_text",
			"order_index", "image_url", "video_url"},
		Required:    []string{"content_id", "section_id", "content_type", "content_text"},
		Description: "Main educational content blocks",
	},
	{
		Name: Formulas,
		Columns: []string{"formula_id", "topic_id", "formula_text", "formula_label",
			"variable_1_symbol", "variable_1_name", "variable_1_unit",
			"variable_2_symbol", "variable_2_name", "variable_2_unit",
			"variable_3_symbol", "variable_3_name", "variable_3_unit"},
		Required:    []string{"formula_id", "topic_id", "formula_text"},
		Description: "Mathematical/scientific formulas",
	},
	{
		Name: QuizQuestions,
		Columns: []string{"question_id", "topic_id", "question_text", "option_a", "option_b", "option_c", "option_d",
			"correct_answer", "explanation", "xp_reward"},
		Required:    []string{"question_id", "topic_id", "question_text", "option_a", "option_b", "correct_answer"},
		Description: "Multiple choice quiz questions",
	},
	{
		Name:        Achievements,
		Columns:     []string{"achievement_id", "icon", "name", "description", "unlock_condition"},
		Required:    []string{"achievement_id", "name", "description"},
		Description: "Gamification badges and achievements",
	},
}

// Lookup returns the table definition for a sheet name.
func Lookup(name string) (Table, bool) {
	for _, t := range Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// Names returns the sheet names in registry declaration order.
func Names() []string {
	names := make([]string, len(Tables))
	for i, t := range Tables {
		names[i] = t.Name
	}
	return names
}

// Normalize canonicalizes a header name: lowercased, spaces replaced with
// underscores.
func Normalize(header string) string {
	return strings.ReplaceAll(strings.ToLower(header), " ", "_")
}
