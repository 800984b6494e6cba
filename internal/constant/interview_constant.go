package constant

// Session lifecycle statuses. Transitions are monotonic:
// draft -> in_progress -> completed.
const (
	SessionStatusDraft      = "draft"
	SessionStatusInProgress = "in_progress"
	SessionStatusCompleted  = "completed"
)

// Target content domains a session can be created for.
const (
	ContentTypeService   = "service"
	ContentTypeProduct   = "product"
	ContentTypeFaq       = "faq"
	ContentTypeCaseStudy = "case_study"
)

// Derived-content generation types.
const (
	GenerationTypeBlog      = "blog"
	GenerationTypeQna       = "qna"
	GenerationTypeCaseStudy = "case_study"
)

// Generation job statuses.
const (
	GenerationJobStatusPending   = "pending"
	GenerationJobStatusCompleted = "completed"
	GenerationJobStatusFailed    = "failed"
)

// Generated rows always start as drafts; publishing is a separate concern.
const GeneratedContentStatusDraft = "draft"

// Link kinds between generated content and its sources.
const (
	ContentLinkKindGeneratedFrom = "generated_from"
	ContentLinkKindSourceUnit    = "source_unit"
)

// MaskToken replaces detected PII spans in free-text answers.
const MaskToken = "[REDACTED]"

// MaxSourceUnits caps how many ranked content units feed a derived-content prompt.
const MaxSourceUnits = 5
