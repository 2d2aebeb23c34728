package validate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub-app/studydata-go/pkg/studydata/models"
	"github.com/studyhub-app/studydata-go/pkg/studydata/sample"
	"github.com/studyhub-app/studydata-go/pkg/studydata/schema"
)

// coverageFixture builds a dataset with nSubjects subjects, topicsPer topics
// each, and exactly enough per-topic content to satisfy every coverage rule.
func coverageFixture(nSubjects, topicsPer int) *models.Dataset {
	var subjects, topics, objectives, terms, content, questions []models.Row

	for s := 1; s <= nSubjects; s++ {
		key := fmt.Sprintf("subject%d", s)
		subjects = append(subjects, models.Row{
			"subject_id":  fmt.Sprintf("sub-%03d", s),
			"subject_key": key,
			"name":        fmt.Sprintf("Subject %d", s),
		})
		for tp := 1; tp <= topicsPer; tp++ {
			tid := fmt.Sprintf("sub%d-t%d", s, tp)
			topics = append(topics, models.Row{
				"topic_id": tid, "subject_key": key,
				"topic_name": fmt.Sprintf("Topic %d.%d", s, tp),
			})
			objectives = append(objectives, models.Row{
				"objective_id": "obj-" + tid, "topic_id": tid, "objective_text": "Learn the thing",
			})
			terms = append(terms, models.Row{
				"term_id": "term-" + tid, "topic_id": tid, "term": "Term", "definition": "Meaning",
			})
			content = append(content, models.Row{
				"content_id": "cont-" + tid, "section_id": tid + "-s1",
				"content_type": "concept_helper", "content_text": "Helper text",
			})
			for q := 1; q <= 3; q++ {
				questions = append(questions, models.Row{
					"question_id": fmt.Sprintf("quiz-%s-%d", tid, q), "topic_id": tid,
					"question_text": "Q?", "option_a": "A", "option_b": "B", "correct_answer": "A",
				})
			}
		}
	}

	ds := models.NewDataset()
	ds.Set(schema.Subjects, []string{"subject_id", "subject_key", "name"}, subjects)
	ds.Set(schema.Topics, []string{"topic_id", "subject_key", "topic_name"}, topics)
	ds.Set(schema.LearningObjectives, []string{"objective_id", "topic_id", "objective_text"}, objectives)
	ds.Set(schema.KeyTerms, []string{"term_id", "topic_id", "term", "definition"}, terms)
	ds.Set(schema.StudyContent, []string{"content_id", "section_id", "content_type", "content_text"}, content)
	ds.Set(schema.QuizQuestions, []string{"question_id", "topic_id", "question_text", "option_a", "option_b", "correct_answer"}, questions)
	return ds
}

func TestValidateCoverage_SampleDataset(t *testing.T) {
	ok, errs := ValidateCoverage(sample.Dataset())
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestValidateCoverage_CompleteFixture(t *testing.T) {
	ok, errs := ValidateCoverage(coverageFixture(4, 3))
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestValidateCoverage_TooFewQuestions(t *testing.T) {
	ds := coverageFixture(4, 3)

	// Drop one quiz question from a single topic, leaving it with 2.
	rows := ds.Rows(schema.QuizQuestions)
	var kept []models.Row
	dropped := false
	for _, r := range rows {
		if !dropped && r.String("topic_id") == "sub1-t1" {
			dropped = true
			continue
		}
		kept = append(kept, r)
	}
	ds.Sheet(schema.QuizQuestions).Rows = kept

	ok, errs := ValidateCoverage(ds)
	assert.False(t, ok)
	require.Len(t, errs, 1, "only the short topic may be reported")
	assert.Contains(t, errs[0], "(sub1-t1)")
	assert.Contains(t, errs[0], "2 quiz questions (min 3 required)")
}

func TestValidateCoverage_TooFewSubjects(t *testing.T) {
	ok, errs := ValidateCoverage(coverageFixture(3, 3))
	assert.False(t, ok)
	assert.Contains(t, errs, "Expected at least 4 subjects, found 3")
}

func TestValidateCoverage_TooFewTopics(t *testing.T) {
	ok, errs := ValidateCoverage(coverageFixture(4, 2))
	assert.False(t, ok)
	require.Len(t, errs, 4)
	for _, e := range errs {
		assert.Contains(t, e, "has only 2 topics (min 3 required)")
	}
}

func TestValidateCoverage_AccumulatesAllViolations(t *testing.T) {
	ds := coverageFixture(4, 3)
	ds.Sheet(schema.LearningObjectives).Rows = nil
	ds.Sheet(schema.KeyTerms).Rows = nil

	ok, errs := ValidateCoverage(ds)
	assert.False(t, ok)
	// 12 topics each missing objectives and terms.
	assert.Len(t, errs, 24)
}

func TestValidateCoverage_MissingSheetReadsAsEmpty(t *testing.T) {
	var subjects, topics []models.Row
	ds := coverageFixture(4, 3)
	subjects = ds.Rows(schema.Subjects)
	topics = ds.Rows(schema.Topics)

	lean := models.NewDataset()
	lean.Set(schema.Subjects, []string{"subject_id", "subject_key", "name"}, subjects)
	lean.Set(schema.Topics, []string{"topic_id", "subject_key", "topic_name"}, topics)

	ok, errs := ValidateCoverage(lean)
	assert.False(t, ok)
	// Every topic is missing objectives, terms, questions, and handouts; the
	// absent sheets read as zero rows rather than aborting the check.
	assert.Len(t, errs, 48)
}

func TestValidateCoverage_HandoutRules(t *testing.T) {
	ds := coverageFixture(4, 3)

	// Narrative text does not count as handout content.
	for _, r := range ds.Rows(schema.StudyContent) {
		if strings.HasPrefix(r.String("section_id"), "sub1-t1") {
			r["content_type"] = "text"
		}
	}

	ok, errs := ValidateCoverage(ds)
	assert.False(t, ok)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "missing Handout-compatible content")
	assert.Contains(t, errs[0], "(sub1-t1)")
}
