// Package merge folds per-topic patch documents into a dataset. For each
// affected table the merge evicts every existing row belonging to a patched
// topic, then appends the translated patch rows, so re-applying the same
// patch is a no-op.
package merge

import (
	"fmt"
	"strings"

	"github.com/studyhub-app/studydata-go/pkg/studydata/models"
	"github.com/studyhub-app/studydata-go/pkg/studydata/schema"
)

// Synthesized ID offsets keep patch-generated IDs clear of earlier content
// batches. Policy constants, not derived from the data.
const (
	contentIDOffset  = 200
	questionIDOffset = 100
)

const questionXPReward = 10

// Column layouts for rows the merge synthesizes, used when the target table
// does not exist yet and to extend existing tables with the patch's fields.
var (
	sectionColumns = []string{"topic_id", "section_id", "title", "icon", "section_type", "order_index"}
	contentColumns = []string{"content_id", "section_id", "content_type", "content_title", "content_text",
		"video_url", "image_url", "description", "order_index"}
	questionColumns = []string{"question_id", "topic_id", "question_text", "option_a", "option_b", "option_c",
		"option_d", "correct_answer", "explanation", "difficulty", "hint", "xp_reward", "image_url"}
)

// Apply folds the patch into a deep copy of the dataset and returns it; the
// input dataset is never mutated. Apply performs no schema or coverage
// validation of its own, but a question patch with fewer than four options
// fails the whole merge.
func Apply(ds *models.Dataset, patch models.Patch) (*models.Dataset, error) {
	out, err := ds.Clone()
	if err != nil {
		return nil, err
	}

	var (
		sections, content, questions          []models.Row
		sectionTopics, contentTopics, qTopics = topicSet(), topicSet(), topicSet()
	)

	for _, up := range patch {
		for _, s := range up.Sections {
			sectionTopics[up.TopicID] = true
			sections = append(sections, sectionRow(up.TopicID, s))
		}
		for i, c := range up.Content {
			contentTopics[up.TopicID] = true
			content = append(content, contentRow(up.TopicID, i, c))
		}
		for i, q := range up.Questions {
			if len(q.Options) < 4 {
				return nil, fmt.Errorf("patch for topic %s: question %d: need 4 options, got %d",
					up.TopicID, i+1, len(q.Options))
			}
			qTopics[up.TopicID] = true
			questions = append(questions, questionRow(up.TopicID, i, q))
		}
	}

	if len(sections) > 0 {
		replace(out, schema.TopicSections, sectionColumns, sections, byTopicID(sectionTopics))
	}
	if len(content) > 0 {
		replace(out, schema.StudyContent, contentColumns, content, bySectionPrefix(contentTopics))
	}
	if len(questions) > 0 {
		replace(out, schema.QuizQuestions, questionColumns, questions, byTopicID(qTopics))
	}

	return out, nil
}

func topicSet() map[string]bool { return make(map[string]bool) }

// byTopicID evicts rows whose topic_id is in the patched set.
func byTopicID(topics map[string]bool) func(models.Row) bool {
	return func(r models.Row) bool { return topics[r.String("topic_id")] }
}

// bySectionPrefix evicts rows whose section_id starts with any patched topic
// id. Study_Content rows carry no topic_id of their own.
func bySectionPrefix(topics map[string]bool) func(models.Row) bool {
	return func(r models.Row) bool {
		sid := r.String("section_id")
		for t := range topics {
			if strings.HasPrefix(sid, t) {
				return true
			}
		}
		return false
	}
}

// replace filters evicted rows out of the named table and appends the new
// rows, creating the table when absent and extending its column list with
// any fields the patch introduces.
func replace(ds *models.Dataset, name string, columns []string, rows []models.Row, evict func(models.Row) bool) {
	sheet := ds.Sheet(name)
	if sheet == nil {
		ds.Set(name, append([]string(nil), columns...), rows)
		return
	}

	kept := sheet.Rows[:0:0]
	for _, r := range sheet.Rows {
		if !evict(r) {
			kept = append(kept, r)
		}
	}
	sheet.Rows = append(kept, rows...)

	have := make(map[string]bool, len(sheet.Columns))
	for _, c := range sheet.Columns {
		have[c] = true
	}
	for _, c := range columns {
		if !have[c] {
			sheet.Columns = append(sheet.Columns, c)
		}
	}
}

func sectionRow(topicID string, s models.SectionPatch) models.Row {
	icon := s.Icon
	if icon == "" {
		icon = "BookOpen"
	}
	sectionType := s.Type
	if sectionType == "" {
		sectionType = "content"
	}
	order := s.Order
	if order == 0 {
		order = 1
	}
	return models.Row{
		"topic_id":     topicID,
		"section_id":   s.ID,
		"title":        s.Title,
		"icon":         icon,
		"section_type": sectionType,
		"order_index":  int64(order),
	}
}

func contentRow(topicID string, idx int, c models.ContentPatch) models.Row {
	contentType := c.Type
	if contentType == "" {
		contentType = "text"
	}
	title := c.Title
	if title == "" {
		title = "Info"
	}
	return models.Row{
		"content_id":    fmt.Sprintf("cont-%s-%d", topicID, idx+contentIDOffset),
		"section_id":    c.SectionID,
		"content_type":  contentType,
		"content_title": title,
		"content_text":  c.Text,
		"video_url":     c.VideoURL,
		"image_url":     c.ImageURL,
		"description":   c.Description,
		"order_index":   int64(idx + 1),
	}
}

func questionRow(topicID string, idx int, q models.QuestionPatch) models.Row {
	return models.Row{
		"question_id":    fmt.Sprintf("quiz-%s-%d", topicID, idx+questionIDOffset),
		"topic_id":       topicID,
		"question_text":  q.Question,
		"option_a":       q.Options[0],
		"option_b":       q.Options[1],
		"option_c":       q.Options[2],
		"option_d":       q.Options[3],
		"correct_answer": q.CorrectAnswer,
		"explanation":    q.Explanation,
		"difficulty":     q.Difficulty,
		"hint":           q.Hint,
		"xp_reward":      int64(questionXPReward),
		"image_url":      "",
	}
}
