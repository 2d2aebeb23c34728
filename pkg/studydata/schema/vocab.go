package schema

// ContentTypes is the closed set of valid Study_Content content_type values.
var ContentTypes = []string{
	"introduction", "formula", "concept_helper", "warning", "real_world",
	"text", "video", "image", "flowchart",
}

// SectionTypes is the closed set of valid Topic_Sections section_type values.
var SectionTypes = []string{"objectives", "intro", "content", "applications", "quiz"}

// HandoutContentTypes is the subset of content types that count as
// instructional-supplementary ("handout") content for coverage checks.
var HandoutContentTypes = []string{"formula", "concept_helper", "warning", "real_world", "flowchart", "image"}

// Icons is the closed set of icon identifiers the frontend can render.
var Icons = []string{
	"Zap", "Calculator", "FlaskConical", "Leaf", "Trophy", "Star", "Award", "Flame",
	"HelpCircle", "CheckCircle2", "Target", "BookOpen", "FileText", "Clock", "Globe",
	"Lightbulb", "AlertTriangle", "Atom", "Microscope", "Dna", "Pi", "Hammer", "RefreshCw",
	"Minimize2", "Triangle", "Disc", "Grid", "ArrowDown", "Link", "GitCommit", "Circle",
	"GitBranch", "Share2",
}

// ValidContentType reports whether v is a recognized content type.
func ValidContentType(v string) bool { return contains(ContentTypes, v) }

// ValidSectionType reports whether v is a recognized section type.
func ValidSectionType(v string) bool { return contains(SectionTypes, v) }

// ValidIcon reports whether v is a recognized icon identifier.
func ValidIcon(v string) bool { return contains(Icons, v) }

// HandoutContentType reports whether v counts as handout-class content.
func HandoutContentType(v string) bool { return contains(HandoutContentTypes, v) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
