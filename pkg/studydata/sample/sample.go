// Package sample builds the demo dataset shipped with the toolkit: four
// subjects, three topics each, and enough content per topic to satisfy the
// coverage rules. Builders are pure; each call returns fresh rows.
package sample

import (
	"fmt"

	"github.com/studyhub-app/studydata-go/pkg/studydata/models"
	"github.com/studyhub-app/studydata-go/pkg/studydata/schema"
)

// Dataset assembles the full sample dataset in registry table order.
func Dataset() *models.Dataset {
	var sections, objectives, terms, content, formulas, questions []models.Row
	for _, l := range lessons() {
		sections = append(sections, l.sectionRows()...)
		objectives = append(objectives, l.objectiveRows()...)
		terms = append(terms, l.termRows()...)
		content = append(content, l.contentRows()...)
		formulas = append(formulas, l.formulaRows()...)
		questions = append(questions, l.questionRows()...)
	}

	rowsByTable := map[string][]models.Row{
		schema.Subjects:           subjects(),
		schema.Topics:             topics(),
		schema.TopicSections:      sections,
		schema.LearningObjectives: objectives,
		schema.KeyTerms:           terms,
		schema.StudyContent:       content,
		schema.Formulas:           formulas,
		schema.QuizQuestions:      questions,
		schema.Achievements:       achievements(),
	}

	ds := models.NewDataset()
	for _, tbl := range schema.Tables {
		ds.Set(tbl.Name, append([]string(nil), tbl.Columns...), rowsByTable[tbl.Name])
	}
	return ds
}

func subjects() []models.Row {
	return []models.Row{
		{"subject_id": "phys-001", "subject_key": "physics", "name": "Physics", "icon": "Zap",
			"color_hex": "#3B82F6", "light_bg": "bg-blue-50", "gradient_from": "blue-500",
			"gradient_to": "blue-600", "dark_glow": "shadow-blue-500/20"},
		{"subject_id": "math-001", "subject_key": "math", "name": "Mathematics", "icon": "Calculator",
			"color_hex": "#10B981", "light_bg": "bg-emerald-50", "gradient_from": "emerald-500",
			"gradient_to": "emerald-600", "dark_glow": "shadow-emerald-500/20"},
		{"subject_id": "chem-001", "subject_key": "chemistry", "name": "Chemistry", "icon": "FlaskConical",
			"color_hex": "#F59E0B", "light_bg": "bg-amber-50", "gradient_from": "amber-500",
			"gradient_to": "amber-600", "dark_glow": "shadow-amber-500/20"},
		{"subject_id": "bio-001", "subject_key": "biology", "name": "Biology", "icon": "Leaf",
			"color_hex": "#8B5CF6", "light_bg": "bg-violet-50", "gradient_from": "violet-500",
			"gradient_to": "violet-600", "dark_glow": "shadow-violet-500/20"},
	}
}

func topics() []models.Row {
	type t struct {
		id, key, name string
		minutes, idx  int64
	}
	all := []t{
		{"phys-t1", "physics", "Newton's Laws", 30, 1},
		{"phys-t2", "physics", "Work & Energy", 45, 2},
		{"phys-t3", "physics", "Electricity", 40, 3},
		{"math-t1", "math", "Algebraic Expressions", 35, 1},
		{"math-t2", "math", "Geometry: Triangles", 30, 2},
		{"math-t3", "math", "Probability", 25, 3},
		{"chem-t1", "chemistry", "Atomic Structure", 40, 1},
		{"chem-t2", "chemistry", "The Periodic Table", 35, 2},
		{"chem-t3", "chemistry", "Chemical Bonding", 45, 3},
		{"bio-t1", "biology", "Cell Biology", 30, 1},
		{"bio-t2", "biology", "Genetics & DNA", 40, 2},
		{"bio-t3", "biology", "Ecosystems", 35, 3},
	}
	rows := make([]models.Row, 0, len(all))
	for _, tp := range all {
		rows = append(rows, models.Row{
			"topic_id": tp.id, "subject_key": tp.key, "topic_name": tp.name,
			"duration_minutes": tp.minutes, "order_index": tp.idx,
		})
	}
	return rows
}

func achievements() []models.Row {
	return []models.Row{
		{"achievement_id": "first-login", "icon": "Zap", "name": "First Login", "description": "Welcome to StudyHub!", "unlock_condition": "Login for the first time"},
		{"achievement_id": "first-quiz", "icon": "HelpCircle", "name": "First Quiz", "description": "Complete your first quiz", "unlock_condition": "Complete any quiz"},
		{"achievement_id": "streak-5", "icon": "Flame", "name": "5-Day Streak", "description": "Study 5 days in a row", "unlock_condition": "streak >= 5"},
		{"achievement_id": "streak-10", "icon": "Flame", "name": "10-Day Streak", "description": "Study 10 days in a row", "unlock_condition": "streak >= 10"},
		{"achievement_id": "topic-complete", "icon": "CheckCircle2", "name": "Topic Master", "description": "Complete any topic", "unlock_condition": "Any topic progress = 100"},
		{"achievement_id": "subject-50", "icon": "Trophy", "name": "Halfway There", "description": "50% in any subject", "unlock_condition": "Any subject progress >= 50"},
		{"achievement_id": "perfect-quiz", "icon": "Star", "name": "Perfect Score", "description": "Score 100% on a quiz", "unlock_condition": "Any quiz score = 100"},
		{"achievement_id": "all-subjects", "icon": "Award", "name": "Well Rounded", "description": "Study all 4 subjects", "unlock_condition": "All subjects accessed"},
	}
}

type section struct{ title, icon, kind string }

type term struct{ word, definition string }

type contentBlock struct {
	secIdx   int
	kind     string
	title    string
	text     string
	imageURL string
	videoURL string
}

type variable struct{ symbol, name, unit string }

type formula struct {
	text  string
	label string
	vars  []variable
}

type question struct {
	text, a, b, c, d, answer, explanation string
}

type lesson struct {
	topicID    string
	sections   []section
	objectives []string
	terms      []term
	content    []contentBlock
	formulas   []formula
	questions  []question
}

func (l lesson) sectionRows() []models.Row {
	rows := make([]models.Row, 0, len(l.sections))
	for i, s := range l.sections {
		rows = append(rows, models.Row{
			"section_id":    fmt.Sprintf("%s-s%d", l.topicID, i+1),
			"topic_id":      l.topicID,
			"section_title": s.title,
			"section_icon":  s.icon,
			"order_index":   int64(i + 1),
			"section_type":  s.kind,
		})
	}
	return rows
}

func (l lesson) objectiveRows() []models.Row {
	rows := make([]models.Row, 0, len(l.objectives))
	for i, text := range l.objectives {
		rows = append(rows, models.Row{
			"objective_id":   fmt.Sprintf("obj-%s-%d", l.topicID, i+1),
			"topic_id":       l.topicID,
			"objective_text": text,
			"order_index":    int64(i + 1),
		})
	}
	return rows
}

func (l lesson) termRows() []models.Row {
	rows := make([]models.Row, 0, len(l.terms))
	for i, t := range l.terms {
		rows = append(rows, models.Row{
			"term_id":    fmt.Sprintf("term-%s-%d", l.topicID, i+1),
			"topic_id":   l.topicID,
			"term":       t.word,
			"definition": t.definition,
		})
	}
	return rows
}

func (l lesson) contentRows() []models.Row {
	rows := make([]models.Row, 0, len(l.content))
	for i, c := range l.content {
		rows = append(rows, models.Row{
			"content_id":    fmt.Sprintf("cont-%s-%d", l.topicID, i+1),
			"section_id":    fmt.Sprintf("%s-s%d", l.topicID, c.secIdx),
			"content_type":  c.kind,
			"content_title": c.title,
			"content_text":  c.text,
			"order_index":   int64(i + 1),
			"image_url":     c.imageURL,
			"video_url":     c.videoURL,
		})
	}
	return rows
}

func (l lesson) formulaRows() []models.Row {
	rows := make([]models.Row, 0, len(l.formulas))
	for i, f := range l.formulas {
		row := models.Row{
			"formula_id":    fmt.Sprintf("form-%s-%d", l.topicID, i+1),
			"topic_id":      l.topicID,
			"formula_text":  f.text,
			"formula_label": f.label,
		}
		for j := 0; j < 3; j++ {
			var v variable
			if j < len(f.vars) {
				v = f.vars[j]
			}
			row[fmt.Sprintf("variable_%d_symbol", j+1)] = v.symbol
			row[fmt.Sprintf("variable_%d_name", j+1)] = v.name
			row[fmt.Sprintf("variable_%d_unit", j+1)] = v.unit
		}
		rows = append(rows, row)
	}
	return rows
}

func (l lesson) questionRows() []models.Row {
	rows := make([]models.Row, 0, len(l.questions))
	for i, q := range l.questions {
		rows = append(rows, models.Row{
			"question_id":    fmt.Sprintf("quiz-%s-%d", l.topicID, i+1),
			"topic_id":       l.topicID,
			"question_text":  q.text,
			"option_a":       q.a,
			"option_b":       q.b,
			"option_c":       q.c,
			"option_d":       q.d,
			"correct_answer": q.answer,
			"explanation":    q.explanation,
			"xp_reward":      int64(10),
		})
	}
	return rows
}
