package constant

// System instructions per derived-content type. The user payload is built by
// pkg/synthesis from the session answers and ranked content units.
const (
	GenerationSystemPromptBlog = `You are a marketing copywriter. Write a blog article based on the interview answers and supporting material provided. Start with a single title line prefixed by "Title:". Optionally include a short "Summary:" block. Then write the article body in plain prose.`

	GenerationSystemPromptQna = `You are a content editor. Produce a single Q&A entry based on the interview answers and supporting material provided. Start with a single title line prefixed by "Title:" phrased as the question. The remainder is the answer text.`

	GenerationSystemPromptCaseStudy = `You are a case-study writer. Produce a customer case study based on the interview answers and supporting material provided. Start with a single title line prefixed by "Title:". Optionally include a "Summary:" block. Then describe challenge, solution and outcome.`
)

// FallbackBanner heads the deterministic summary used when the provider is unavailable.
const FallbackBanner = "[Generated content unavailable - raw interview answers below]"
