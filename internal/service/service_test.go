package service

import (
	"context"
	"errors"
	"sort"

	"interview-content-be/internal/entity"
	"interview-content-be/internal/repository/contract"
	"interview-content-be/internal/repository/specification"
	"interview-content-be/internal/repository/unitofwork"
	"interview-content-be/pkg/llm"

	"github.com/google/uuid"
)

// In-memory fakes shared by the service tests. They implement just enough of
// the repository contracts to drive the lifecycle and generation flows.

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeProvider struct {
	text  string
	err   error
	calls int
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (*llm.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Result{
		Text:  f.text,
		Model: "fake-model",
		Usage: llm.Usage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150},
	}, nil
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (*llm.Result, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type fakeSessionRepo struct {
	sessions  map[uuid.UUID]*entity.InterviewSession
	updateErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.InterviewSession)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.InterviewSession) error {
	cp := *session
	r.sessions[session.Id] = &cp
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.InterviewSession) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	cp := *session
	r.sessions[session.Id] = &cp
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InterviewSession, error) {
	id, ok := findByID(specs)
	if !ok {
		return nil, errors.New("fake repo supports lookup by id only")
	}
	session, found := r.sessions[id]
	if !found {
		return nil, nil
	}
	if orgId, scoped := findOrg(specs); scoped && session.OrganizationId != orgId {
		return nil, nil
	}
	cp := *session
	cp.Answers = make(map[string]string, len(session.Answers))
	for k, v := range session.Answers {
		cp.Answers[k] = v
	}
	return &cp, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InterviewSession, error) {
	out := make([]*entity.InterviewSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.sessions)), nil
}

func findByID(specs []specification.Specification) (uuid.UUID, bool) {
	for _, s := range specs {
		if byID, ok := s.(specification.ByID); ok {
			return byID.ID, true
		}
	}
	return uuid.Nil, false
}

func findOrg(specs []specification.Specification) (uuid.UUID, bool) {
	for _, s := range specs {
		if owned, ok := s.(specification.OwnedByOrganization); ok {
			return owned.OrganizationID, true
		}
	}
	return uuid.Nil, false
}

type fakeUnitRepo struct {
	units []*entity.ContentUnit
}

func (r *fakeUnitRepo) CreateBulk(ctx context.Context, units []*entity.ContentUnit) error {
	r.units = append(r.units, units...)
	return nil
}

// FindAll mirrors the ranking and cap the real store applies, so callers
// asking for the top units get exactly that.
func (r *fakeUnitRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContentUnit, error) {
	out := append([]*entity.ContentUnit(nil), r.units...)
	for _, s := range specs {
		if _, ok := s.(specification.RankedByRelevance); ok {
			sort.SliceStable(out, func(i, j int) bool {
				if out[i].RelevanceScore != out[j].RelevanceScore {
					return out[i].RelevanceScore > out[j].RelevanceScore
				}
				return out[i].SortOrder < out[j].SortOrder
			})
		}
	}
	for _, s := range specs {
		if limit, ok := s.(specification.Limit); ok && len(out) > limit.N {
			out = out[:limit.N]
		}
	}
	return out, nil
}

func (r *fakeUnitRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.units)), nil
}

type fakeCitationRepo struct {
	records   []*entity.CitationRecord
	createErr error
}

func (r *fakeCitationRepo) Create(ctx context.Context, record *entity.CitationRecord) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.records = append(r.records, record)
	return nil
}

func (r *fakeCitationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CitationRecord, error) {
	return r.records, nil
}

func (r *fakeCitationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.records)), nil
}

type fakeJobRepo struct {
	jobs map[uuid.UUID]*entity.GenerationJob
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]*entity.GenerationJob)}
}

func (r *fakeJobRepo) Create(ctx context.Context, job *entity.GenerationJob) error {
	cp := *job
	r.jobs[job.Id] = &cp
	return nil
}

func (r *fakeJobRepo) Update(ctx context.Context, job *entity.GenerationJob) error {
	cp := *job
	r.jobs[job.Id] = &cp
	return nil
}

func (r *fakeJobRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GenerationJob, error) {
	id, ok := findByID(specs)
	if !ok {
		return nil, errors.New("fake repo supports lookup by id only")
	}
	job, found := r.jobs[id]
	if !found {
		return nil, nil
	}
	cp := *job
	return &cp, nil
}

func (r *fakeJobRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GenerationJob, error) {
	orgId, scoped := findOrg(specs)
	out := make([]*entity.GenerationJob, 0, len(r.jobs))
	for _, j := range r.jobs {
		if scoped && j.OrganizationId != orgId {
			continue
		}
		cp := *j
		out = append(out, &cp)
	}
	return out, nil
}

type fakeArticleRepo struct {
	articles []*entity.Article
}

func (r *fakeArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	r.articles = append(r.articles, article)
	return nil
}

func (r *fakeArticleRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Article, error) {
	if len(r.articles) == 0 {
		return nil, nil
	}
	return r.articles[len(r.articles)-1], nil
}

type fakeQnaRepo struct {
	entries []*entity.QnaEntry
}

func (r *fakeQnaRepo) Create(ctx context.Context, entry *entity.QnaEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeQnaRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QnaEntry, error) {
	if len(r.entries) == 0 {
		return nil, nil
	}
	return r.entries[len(r.entries)-1], nil
}

type fakeCaseStudyRepo struct {
	studies []*entity.CaseStudy
}

func (r *fakeCaseStudyRepo) Create(ctx context.Context, study *entity.CaseStudy) error {
	r.studies = append(r.studies, study)
	return nil
}

func (r *fakeCaseStudyRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CaseStudy, error) {
	if len(r.studies) == 0 {
		return nil, nil
	}
	return r.studies[len(r.studies)-1], nil
}

type fakeLinkRepo struct {
	links     []*entity.ContentLink
	createErr error
}

func (r *fakeLinkRepo) CreateBulk(ctx context.Context, links []*entity.ContentLink) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.links = append(r.links, links...)
	return nil
}

func (r *fakeLinkRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContentLink, error) {
	return r.links, nil
}

type fakeUow struct {
	sessions  *fakeSessionRepo
	units     *fakeUnitRepo
	citations *fakeCitationRepo
	jobs      *fakeJobRepo
	articles  *fakeArticleRepo
	qna       *fakeQnaRepo
	studies   *fakeCaseStudyRepo
	links     *fakeLinkRepo

	snapshot *uowSnapshot
	commits  int
}

// uowSnapshot holds the repo state at Begin so Rollback can discard writes
// made inside the transaction, the way a real transaction would.
type uowSnapshot struct {
	sessions  map[uuid.UUID]*entity.InterviewSession
	jobs      map[uuid.UUID]*entity.GenerationJob
	citations []*entity.CitationRecord
	articles  []*entity.Article
	qna       []*entity.QnaEntry
	studies   []*entity.CaseStudy
	links     []*entity.ContentLink
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		sessions:  newFakeSessionRepo(),
		units:     &fakeUnitRepo{},
		citations: &fakeCitationRepo{},
		jobs:      newFakeJobRepo(),
		articles:  &fakeArticleRepo{},
		qna:       &fakeQnaRepo{},
		studies:   &fakeCaseStudyRepo{},
		links:     &fakeLinkRepo{},
	}
}

func (u *fakeUow) Begin(ctx context.Context) error {
	if u.snapshot != nil {
		return errors.New("transaction already started")
	}
	snap := &uowSnapshot{
		sessions:  make(map[uuid.UUID]*entity.InterviewSession, len(u.sessions.sessions)),
		jobs:      make(map[uuid.UUID]*entity.GenerationJob, len(u.jobs.jobs)),
		citations: append([]*entity.CitationRecord(nil), u.citations.records...),
		articles:  append([]*entity.Article(nil), u.articles.articles...),
		qna:       append([]*entity.QnaEntry(nil), u.qna.entries...),
		studies:   append([]*entity.CaseStudy(nil), u.studies.studies...),
		links:     append([]*entity.ContentLink(nil), u.links.links...),
	}
	for id, s := range u.sessions.sessions {
		snap.sessions[id] = s
	}
	for id, j := range u.jobs.jobs {
		snap.jobs[id] = j
	}
	u.snapshot = snap
	return nil
}

func (u *fakeUow) Commit() error {
	if u.snapshot == nil {
		return errors.New("no transaction to commit")
	}
	u.snapshot = nil
	u.commits++
	return nil
}

func (u *fakeUow) Rollback() error {
	if u.snapshot == nil {
		return errors.New("no transaction to rollback")
	}
	u.sessions.sessions = u.snapshot.sessions
	u.jobs.jobs = u.snapshot.jobs
	u.citations.records = u.snapshot.citations
	u.articles.articles = u.snapshot.articles
	u.qna.entries = u.snapshot.qna
	u.studies.studies = u.snapshot.studies
	u.links.links = u.snapshot.links
	u.snapshot = nil
	return nil
}

func (u *fakeUow) InterviewSessionRepository() contract.InterviewSessionRepository {
	return u.sessions
}
func (u *fakeUow) ContentUnitRepository() contract.ContentUnitRepository       { return u.units }
func (u *fakeUow) CitationRecordRepository() contract.CitationRecordRepository { return u.citations }
func (u *fakeUow) GenerationJobRepository() contract.GenerationJobRepository   { return u.jobs }
func (u *fakeUow) ArticleRepository() contract.ArticleRepository               { return u.articles }
func (u *fakeUow) QnaEntryRepository() contract.QnaEntryRepository             { return u.qna }
func (u *fakeUow) CaseStudyRepository() contract.CaseStudyRepository           { return u.studies }
func (u *fakeUow) ContentLinkRepository() contract.ContentLinkRepository       { return u.links }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}
