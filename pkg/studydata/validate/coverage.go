package validate

import (
	"fmt"
	"strings"

	"github.com/studyhub-app/studydata-go/pkg/studydata/models"
	"github.com/studyhub-app/studydata-go/pkg/studydata/schema"
)

// Coverage thresholds for a publishable dataset.
const (
	minSubjects         = 4
	minTopicsPerSubject = 3
	minQuizQuestions    = 3
)

// ValidateCoverage checks the cross-table completeness rules: enough
// subjects, enough topics per subject, and for every topic at least one
// learning objective, one key term, three quiz questions, and one
// handout-class content block. Missing sheets read as empty tables; run
// Validate first to catch those structurally.
//
// The returned error list holds every violation found; ok is true iff the
// list is empty.
func ValidateCoverage(ds *models.Dataset) (bool, []string) {
	subjects := ds.Rows(schema.Subjects)
	topics := ds.Rows(schema.Topics)
	objectives := ds.Rows(schema.LearningObjectives)
	terms := ds.Rows(schema.KeyTerms)
	content := ds.Rows(schema.StudyContent)
	questions := ds.Rows(schema.QuizQuestions)

	var errs []string

	if len(subjects) < minSubjects {
		errs = append(errs, fmt.Sprintf("Expected at least %d subjects, found %d", minSubjects, len(subjects)))
	}

	for _, sub := range subjects {
		subKey := sub.String("subject_key")

		var subTopics []models.Row
		for _, t := range topics {
			if t.String("subject_key") == subKey {
				subTopics = append(subTopics, t)
			}
		}
		if len(subTopics) < minTopicsPerSubject {
			errs = append(errs, fmt.Sprintf("Subject '%s' has only %d topics (min %d required)",
				sub.String("name"), len(subTopics), minTopicsPerSubject))
		}

		for _, topic := range subTopics {
			tid := topic.String("topic_id")
			tname := topic.String("topic_name")

			if countByTopic(objectives, tid) == 0 {
				errs = append(errs, fmt.Sprintf("Topic '%s' (%s) missing Learning Objectives", tname, tid))
			}
			if countByTopic(terms, tid) == 0 {
				errs = append(errs, fmt.Sprintf("Topic '%s' (%s) missing Key Terms", tname, tid))
			}
			if n := countByTopic(questions, tid); n < minQuizQuestions {
				errs = append(errs, fmt.Sprintf("Topic '%s' (%s) has %d quiz questions (min %d required)",
					tname, tid, n, minQuizQuestions))
			}
			if countHandoutContent(content, tid) == 0 {
				errs = append(errs, fmt.Sprintf(
					"Topic '%s' (%s) missing Handout-compatible content (concept_helper, real_world, etc.)",
					tname, tid))
			}
		}
	}

	return len(errs) == 0, errs
}

func countByTopic(rows []models.Row, topicID string) int {
	n := 0
	for _, r := range rows {
		if r.String("topic_id") == topicID {
			n++
		}
	}
	return n
}

// countHandoutContent counts handout-class content rows belonging to a topic.
// Study_Content carries no topic_id; the relation is the topic_id prefix on
// section_id.
func countHandoutContent(rows []models.Row, topicID string) int {
	n := 0
	for _, r := range rows {
		if strings.HasPrefix(r.String("section_id"), topicID) && schema.HandoutContentType(r.String("content_type")) {
			n++
		}
	}
	return n
}
