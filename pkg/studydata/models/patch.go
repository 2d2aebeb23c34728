package models

// Patch is an ordered sequence of per-topic content updates, as produced by
// the content authoring pipeline.
type Patch []TopicUpdate

// TopicUpdate carries replacement rows for one topic. Arrays that are absent
// leave the corresponding table untouched for that topic.
type TopicUpdate struct {
	TopicID   string          `json:"topicId"`
	Sections  []SectionPatch  `json:"sections,omitempty"`
	Content   []ContentPatch  `json:"content,omitempty"`
	Questions []QuestionPatch `json:"questions,omitempty"`
}

// SectionPatch describes one replacement section.
type SectionPatch struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
	Type  string `json:"type,omitempty"`
	Order int    `json:"order,omitempty"`
}

// ContentPatch describes one replacement content block.
type ContentPatch struct {
	SectionID   string `json:"sectionId"`
	Type        string `json:"type,omitempty"`
	Title       string `json:"title,omitempty"`
	Text        string `json:"text,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// QuestionPatch describes one replacement quiz question. Options must carry
// exactly four entries (A through D).
type QuestionPatch struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Hint          string   `json:"hint,omitempty"`
}
