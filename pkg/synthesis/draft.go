package synthesis

import (
	"regexp"
	"strings"
)

// Draft is the heuristic parse of a raw provider response for derived content.
type Draft struct {
	Title   string
	Summary string
	Content string
	Slug    string
}

var (
	titleLinePattern   = regexp.MustCompile(`(?i)^(?:#+\s*)?(?:title\s*:\s*)?(\S.*)$`)
	summaryLinePattern = regexp.MustCompile(`(?i)^(?:##\s*)?summary\s*:?\s*(.*)$`)
	slugCleanPattern   = regexp.MustCompile(`[^a-z0-9]+`)
)

// ParseDraft splits a raw response into title, optional summary and body.
// The first non-empty line becomes the title (markdown heading or "Title:"
// prefix stripped); a "Summary:" block is captured until the next blank line;
// everything else is the content.
func ParseDraft(raw string) *Draft {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	d := &Draft{}
	var content []string
	inSummary := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if d.Title == "" && trimmed != "" {
			if m := titleLinePattern.FindStringSubmatch(trimmed); m != nil {
				d.Title = strings.Trim(m[1], `"* `)
				continue
			}
		}

		if inSummary {
			if trimmed == "" {
				inSummary = false
				continue
			}
			d.Summary = strings.TrimSpace(d.Summary + " " + trimmed)
			continue
		}

		if d.Summary == "" {
			if m := summaryLinePattern.FindStringSubmatch(trimmed); m != nil {
				d.Summary = strings.TrimSpace(m[1])
				inSummary = true
				continue
			}
		}

		content = append(content, line)
	}

	d.Content = strings.TrimSpace(strings.Join(content, "\n"))
	d.Slug = Slugify(d.Title)
	return d
}

// Slugify derives a URL-safe slug from a title.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugCleanPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 120 {
		slug = strings.Trim(slug[:120], "-")
	}
	return slug
}
