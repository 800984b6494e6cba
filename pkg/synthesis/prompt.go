package synthesis

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// QA is one answered interview question.
type QA struct {
	QuestionId string
	Answer     string
}

// SortPairs orders pairs by question id so prompt rendering is deterministic
// regardless of map iteration order.
func SortPairs(pairs []QA) {
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].QuestionId < pairs[j].QuestionId
	})
}

var sectionFocus = map[string]string{
	"service":    "the service offering",
	"product":    "the product",
	"faq":        "common customer questions",
	"case_study": "the customer engagement",
}

// BuildSummaryPrompt renders the accumulated Q&A into a single structured
// prompt. Output is deterministic for a given pair slice and content type.
func BuildSummaryPrompt(pairs []QA, contentType string) string {
	focus := sectionFocus[contentType]
	if focus == "" {
		focus = "the business"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on the interview answers below about %s, write marketing content with the following sections:\n", focus)
	b.WriteString("1. Summary\n")
	b.WriteString("2. Key Points\n")
	b.WriteString("3. Strengths\n")
	b.WriteString("4. Target Customer\n")
	b.WriteString("5. Pricing\n\n")
	b.WriteString("Interview answers:\n")

	for i, p := range pairs {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, p.QuestionId, p.Answer)
	}

	return b.String()
}

// BuildDraftPrompt renders the user payload for derived-content generation:
// the raw answers plus the top-ranked content units.
func BuildDraftPrompt(pairs []QA, units []Unit) string {
	var b strings.Builder
	b.WriteString("Interview answers:\n")
	for i, p := range pairs {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, p.QuestionId, p.Answer)
	}

	if len(units) > 0 {
		b.WriteString("\nSupporting material:\n")
		for _, u := range units {
			fmt.Fprintf(&b, "- %s: %s\n", u.Title, u.Body)
		}
	}

	return b.String()
}

// Unit is the slice of a content unit the prompt builder needs.
type Unit struct {
	Title string
	Body  string
}

// FallbackSummary deterministically lists every answered pair verbatim under
// an unavailability banner. Used when the provider cannot be reached.
func FallbackSummary(banner string, pairs []QA, now time.Time) string {
	var b strings.Builder
	b.WriteString(banner)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Generated at: %s\n\n", now.UTC().Format(time.RFC3339))

	for _, p := range pairs {
		fmt.Fprintf(&b, "Q (%s):\nA: %s\n\n", p.QuestionId, p.Answer)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
