package scraper

import "strings"

// Tag classifies a requirement line for display grouping. Tags drive UI
// grouping/coloring only; the talent filter engine never consumes them.
type Tag string

const (
	TagRequired  Tag = "REQUIRED"
	TagDuties    Tag = "DUTIES"
	TagPreferred Tag = "PREFERRED"
	TagNone      Tag = ""
)

// Requirement is one extracted line, stripped of its annotations.
type Requirement struct {
	Text string `json:"text"`
	Tag  Tag    `json:"tag,omitempty"`
}

// Group is a display section with its requirements in original order.
type Group struct {
	Section      string        `json:"section"`
	Requirements []Requirement `json:"requirements"`
}

const sectionPrefix = "SECTION: "

// Parse splits scraped requirement lines into display groups. A line
// starting with "SECTION: " opens a new group; "[REQUIRED]", "[DUTIES]"
// and "[PREFERRED]" prefixes become tags. Lines before any section header
// land in a group with an empty section name. Blank lines are dropped.
func Parse(lines []string) []Group {
	var groups []Group
	current := -1

	ensureGroup := func(name string) {
		groups = append(groups, Group{Section: name})
		current = len(groups) - 1
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, sectionPrefix) {
			ensureGroup(strings.TrimSpace(strings.TrimPrefix(line, sectionPrefix)))
			continue
		}

		if current == -1 {
			ensureGroup("")
		}

		req := Requirement{Text: line}
		for _, tag := range []Tag{TagRequired, TagDuties, TagPreferred} {
			marker := "[" + string(tag) + "]"
			if strings.HasPrefix(line, marker) {
				req.Tag = tag
				req.Text = strings.TrimSpace(strings.TrimPrefix(line, marker))
				break
			}
		}
		groups[current].Requirements = append(groups[current].Requirements, req)
	}

	return groups
}

// Flatten returns the bare requirement texts in original order, the shape
// the AI optimizer expects.
func Flatten(groups []Group) []string {
	var out []string
	for _, g := range groups {
		for _, r := range g.Requirements {
			out = append(out, r.Text)
		}
	}
	return out
}
