package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shellasitanaya/backend-cv-analyzer/audit"
	"github.com/shellasitanaya/backend-cv-analyzer/extractor"
	"github.com/shellasitanaya/backend-cv-analyzer/gate"
	"github.com/shellasitanaya/backend-cv-analyzer/models"
	"github.com/shellasitanaya/backend-cv-analyzer/scorer"
	"github.com/shellasitanaya/backend-cv-analyzer/skills"
)

const passingCV = `Budi Santoso
budi.santoso@email.com | +628123456789

Summary
Backend engineer focused on payment systems.

Experience
Software Engineer at PT Cipta Solusi
01/2019 - 01/2023
Built REST services in Python, tuned PostgreSQL, shipped Docker images.

Education
S1 Computer Science, Universitas Indonesia, GPA: 3.5

Skills
Python, Docker, PostgreSQL, Git
`

const lowGPACV = `Andi Wijaya
andi.wijaya@email.com

Experience
Software Engineer
01/2019 - 01/2023
Backend work in Python and Docker.

Education
S1 Informatics, GPA: 2.4

Skills
Python, Docker
`

type fakeDocs struct{}

func (fakeDocs) ExtractText(filename string, data []byte) (string, error) {
	if strings.Contains(filename, "corrupt") {
		return "", errors.New("not a valid document")
	}
	return string(data), nil
}

type memoryStore struct {
	mu    sync.Mutex
	saved []*models.Candidate
}

func (s *memoryStore) SaveCandidate(_ context.Context, c *models.Candidate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, c)
	return "cand-1", nil
}

type passingOracle struct{}

func (passingOracle) ScoreRubric(_ context.Context, _ string, _ models.JobRequirements) (*scorer.Assessment, error) {
	return &scorer.Assessment{
		MandatoryChecks: map[string]models.MandatoryCheck{"gpa": {Value: "3.5", Status: "PASS"}},
		Rubric:          models.RubricScores{Relevance: 80, Seniority: 70, Quality: 70},
	}, nil
}

func newTestPipeline(store CandidateStore) *Pipeline {
	vocab := skills.DefaultVocabulary()
	return New(
		fakeDocs{},
		extractor.New(nil, nil, vocab),
		gate.New(),
		scorer.NewRubricScorer(passingOracle{}),
		audit.New(vocab),
		store,
		WithMaxConcurrent(3),
	)
}

func testJob() *models.Job {
	minGPA := 3.0
	minExp := 2
	return &models.Job{
		ID:                 "job-1",
		Title:              "Backend Engineer",
		Description:        "Python backend engineer with Docker experience",
		MinGPA:             &minGPA,
		MinExperienceYears: &minExp,
		DegreeRequirement:  "S1",
		RequiredSkills:     []string{"Python", "Docker"},
	}
}

// ctxAwareStore refuses writes once its context is cancelled, the way
// a real datastore client would.
type ctxAwareStore struct {
	memoryStore
}

func (s *ctxAwareStore) SaveCandidate(ctx context.Context, c *models.Candidate) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.memoryStore.SaveCandidate(ctx, c)
}

// cancellingOracle cancels the batch context while scoring is in
// flight, simulating a client that aborts mid-batch.
type cancellingOracle struct {
	cancel context.CancelFunc
}

func (o cancellingOracle) ScoreRubric(_ context.Context, _ string, _ models.JobRequirements) (*scorer.Assessment, error) {
	o.cancel()
	return passingOracle{}.ScoreRubric(nil, "", models.JobRequirements{})
}

func TestEvaluatePassingCandidate(t *testing.T) {
	store := &memoryStore{}
	p := newTestPipeline(store)

	out := p.Evaluate(context.Background(), testJob(), Document{Filename: "budi.pdf", Data: []byte(passingCV)})

	require.True(t, out.Verdict.Passed)
	assert.Equal(t, models.CandidateStatusPassed, out.Candidate.Status)
	require.NotNil(t, out.Score)
	assert.Equal(t, 76.0, out.Score.FinalScore)
	require.NotNil(t, out.Audit)
	assert.Len(t, store.saved, 1)
}

func TestEvaluateGateRejection(t *testing.T) {
	store := &memoryStore{}
	p := newTestPipeline(store)

	out := p.Evaluate(context.Background(), testJob(), Document{Filename: "andi.pdf", Data: []byte(lowGPACV)})

	assert.False(t, out.Verdict.Passed)
	assert.Equal(t, "GPA below minimum requirement (3)", out.Verdict.RejectionReason)
	assert.Equal(t, models.CandidateStatusRejected, out.Candidate.Status)
	assert.Nil(t, out.Score)
	// Rejected candidates are persisted with their reason.
	require.Len(t, store.saved, 1)
	assert.Equal(t, "GPA below minimum requirement (3)", store.saved[0].RejectionReason)
}

func TestProcessBatchIsolatesCorruptFile(t *testing.T) {
	store := &memoryStore{}
	p := newTestPipeline(store)

	docs := []Document{
		{Filename: "cv1.pdf", Data: []byte(passingCV)},
		{Filename: "cv2.pdf", Data: []byte(passingCV)},
		{Filename: "corrupt.pdf", Data: []byte("garbage")},
		{Filename: "cv4.pdf", Data: []byte(passingCV)},
		{Filename: "cv5.pdf", Data: []byte(lowGPACV)},
	}

	report, outcomes := p.ProcessBatch(context.Background(), testJob(), docs)

	require.Len(t, outcomes, 5)
	assert.Equal(t, 3, report.PassedCount)
	assert.Equal(t, 2, report.RejectedCount)
	assert.Equal(t, 1, report.RejectionDetails[ReasonUnreadableFile])
	assert.Equal(t, 1, report.RejectionDetails["GPA below minimum requirement (3)"])

	// The corrupt file's neighbors are unaffected.
	assert.True(t, outcomes[1].Verdict.Passed)
	assert.False(t, outcomes[2].Verdict.Passed)
	assert.True(t, outcomes[3].Verdict.Passed)
}

func TestProcessBatchReportIsOrderIndependent(t *testing.T) {
	store := &memoryStore{}
	p := newTestPipeline(store)

	docs := []Document{
		{Filename: "a.pdf", Data: []byte(passingCV)},
		{Filename: "b.pdf", Data: []byte(lowGPACV)},
		{Filename: "c.pdf", Data: []byte(passingCV)},
	}

	first, _ := p.ProcessBatch(context.Background(), testJob(), docs)

	reversed := []Document{docs[2], docs[1], docs[0]}
	second, _ := p.ProcessBatch(context.Background(), testJob(), reversed)

	assert.Equal(t, first, second)
}

func TestEvaluateCarriesStoragePath(t *testing.T) {
	store := &memoryStore{}
	p := newTestPipeline(store)

	doc := Document{
		Filename:    "budi.pdf",
		Data:        []byte(passingCV),
		StoragePath: "https://storage.googleapis.com/bucket/cvs/job-1/1_budi.pdf",
	}
	out := p.Evaluate(context.Background(), testJob(), doc)

	assert.Equal(t, doc.StoragePath, out.Candidate.StoragePath)
	require.Len(t, store.saved, 1)
	assert.Equal(t, doc.StoragePath, store.saved[0].StoragePath)
}

func TestEvaluateCarriesStoragePathOnRejection(t *testing.T) {
	store := &memoryStore{}
	p := newTestPipeline(store)

	doc := Document{
		Filename:    "andi.pdf",
		Data:        []byte(lowGPACV),
		StoragePath: "https://storage.googleapis.com/bucket/cvs/job-1/2_andi.pdf",
	}
	out := p.Evaluate(context.Background(), testJob(), doc)

	assert.False(t, out.Verdict.Passed)
	require.Len(t, store.saved, 1)
	assert.Equal(t, doc.StoragePath, store.saved[0].StoragePath)
}

func TestCompletedEvaluationPersistsAfterCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &ctxAwareStore{}
	vocab := skills.DefaultVocabulary()
	p := New(
		fakeDocs{},
		extractor.New(nil, nil, vocab),
		gate.New(),
		scorer.NewRubricScorer(cancellingOracle{cancel: cancel}),
		audit.New(vocab),
		store,
	)

	out := p.Evaluate(ctx, testJob(), Document{Filename: "budi.pdf", Data: []byte(passingCV)})

	// The batch context is cancelled by the time the write happens, but
	// the finished evaluation still lands.
	require.True(t, out.Verdict.Passed)
	require.Len(t, store.saved, 1)
	assert.Equal(t, models.CandidateStatusPassed, store.saved[0].Status)
}

func TestProcessBatchCancelledContext(t *testing.T) {
	store := &memoryStore{}
	p := newTestPipeline(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := []Document{
		{Filename: "cv1.pdf", Data: []byte(passingCV)},
		{Filename: "cv2.pdf", Data: []byte(passingCV)},
	}

	report, outcomes := p.ProcessBatch(ctx, testJob(), docs)

	assert.Equal(t, 0, report.PassedCount)
	assert.Equal(t, 2, report.RejectedCount)
	for _, out := range outcomes {
		assert.Equal(t, "batch cancelled", out.Verdict.RejectionReason)
	}
	// Nothing was dispatched, so nothing was written.
	assert.Empty(t, store.saved)
}
