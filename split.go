package sitechat

import (
	"regexp"
	"strings"
)

// DefaultChunkSize is the default character budget for SplitMarkdown.
const DefaultChunkSize = 1200

// Section is a contiguous run of markdown lines produced by SplitMarkdown.
type Section struct {
	// Heading is the breadcrumb of headings in effect where the section
	// starts (e.g. "Pricing > Plans").
	Heading string `json:"heading"`
	Content string `json:"content"`
}

var headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*#*$`)

// SplitMarkdown splits markdown into sections of roughly size characters.
// Lines are never rewritten or merged, so list markers and numbering in the
// source survive intact. A heading starts a new section, and blank lines are
// preferred break points. A single line longer than size becomes its own section.
func SplitMarkdown(markdown string, size int) []Section {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if strings.TrimSpace(markdown) == "" {
		return nil
	}

	var (
		sections []Section
		current  []string
		length   int
		heading  string
		crumbs   = make([]string, 6)
	)

	flush := func() {
		text := strings.TrimSpace(strings.Join(current, "\n"))
		if text != "" {
			sections = append(sections, Section{Heading: heading, Content: text})
		}
		current = current[:0]
		length = 0
	}

	// lastBlank returns the index just after the last blank line in current.
	lastBlank := func() int {
		for i := len(current) - 1; i > 0; i-- {
			if strings.TrimSpace(current[i]) == "" {
				return i + 1
			}
		}
		return 0
	}

	inFence := false
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
		}

		if m := headingRe.FindStringSubmatch(trimmed); m != nil && !inFence {
			flush()
			level := len(m[1])
			crumbs[level-1] = m[2]
			for i := level; i < len(crumbs); i++ {
				crumbs[i] = ""
			}
			heading = joinCrumbs(crumbs)
		}

		if length > 0 && length+len(line)+1 > size {
			// Break at the last paragraph boundary when there is one so
			// that a list or paragraph is not split mid-way.
			if cut := lastBlank(); cut > 0 && cut < len(current) {
				carry := append([]string(nil), current[cut:]...)
				current = current[:cut]
				flush()
				for _, l := range carry {
					current = append(current, l)
					length += len(l) + 1
				}
			} else {
				flush()
			}
		}

		current = append(current, line)
		length += len(line) + 1
	}
	flush()

	return sections
}

func joinCrumbs(crumbs []string) string {
	var parts []string
	for _, c := range crumbs {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " > ")
}
