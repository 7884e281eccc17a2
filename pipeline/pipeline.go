// Package pipeline runs the per-candidate evaluation flow (extract,
// gate, score, audit) over batches of uploaded resumes.
package pipeline

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shellasitanaya/backend-cv-analyzer/audit"
	"github.com/shellasitanaya/backend-cv-analyzer/extractor"
	"github.com/shellasitanaya/backend-cv-analyzer/gate"
	"github.com/shellasitanaya/backend-cv-analyzer/models"
	"github.com/shellasitanaya/backend-cv-analyzer/scorer"
)

const (
	defaultMaxConcurrent = 5
	defaultOracleTimeout = 60 * time.Second
)

// ReasonUnreadableFile is recorded when text extraction yields nothing.
const ReasonUnreadableFile = "unreadable file"

// Document is one uploaded resume awaiting evaluation. StoragePath is
// the archive URL of the original file when it was stored, and is
// carried onto the persisted candidate record.
type Document struct {
	Filename    string
	Data        []byte
	StoragePath string
}

// TextExtractor converts an uploaded document to plain text.
type TextExtractor interface {
	ExtractText(filename string, data []byte) (string, error)
}

// CandidateStore persists one evaluated candidate. Each save is an
// independent write; one candidate's failure never rolls back another's.
type CandidateStore interface {
	SaveCandidate(ctx context.Context, candidate *models.Candidate) (string, error)
}

// Outcome is the full in-memory result for one document. Only the
// candidate record is persisted; the audit lives here for the response.
type Outcome struct {
	Candidate *models.Candidate
	Verdict   models.EligibilityVerdict
	Score     *models.ScoreResult
	Audit     *models.AuditResult
}

// Pipeline evaluates resumes against a job's requirements.
type Pipeline struct {
	docs          TextExtractor
	extractor     *extractor.Extractor
	gate          *gate.Gate
	scorer        *scorer.RubricScorer
	auditor       *audit.Auditor
	store         CandidateStore
	maxConcurrent int
	oracleTimeout time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithMaxConcurrent bounds how many candidates are evaluated at once.
func WithMaxConcurrent(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.maxConcurrent = n
		}
	}
}

// WithOracleTimeout bounds each scoring call.
func WithOracleTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		if d > 0 {
			p.oracleTimeout = d
		}
	}
}

// New wires the evaluation pipeline.
func New(docs TextExtractor, ext *extractor.Extractor, g *gate.Gate, sc *scorer.RubricScorer, aud *audit.Auditor, store CandidateStore, opts ...Option) *Pipeline {
	p := &Pipeline{
		docs:          docs,
		extractor:     ext,
		gate:          g,
		scorer:        sc,
		auditor:       aud,
		store:         store,
		maxConcurrent: defaultMaxConcurrent,
		oracleTimeout: defaultOracleTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessBatch evaluates every document against the job with bounded
// parallelism. Candidates are independent: a corrupt file or a scoring
// failure produces a rejected or degraded outcome for that document
// only. Cancelling the context stops dispatching new candidates but
// lets in-flight evaluations finish; completed evaluations persist on a
// detached context so cancellation never leaves them half-recorded. The
// report is a fold over per-candidate verdicts and does not depend on
// completion order.
func (p *Pipeline) ProcessBatch(ctx context.Context, job *models.Job, docs []Document) (*models.BatchReport, []Outcome) {
	log.Printf("[Pipeline] Starting batch of %d documents for job %s", len(docs), job.ID)

	req := job.Requirements()
	outcomes := make([]Outcome, len(docs))

	var g errgroup.Group
	g.SetLimit(p.maxConcurrent)

	for i, doc := range docs {
		if ctx.Err() != nil {
			log.Printf("[Pipeline] Batch cancelled, skipping remaining %d documents", len(docs)-i)
			for j := i; j < len(docs); j++ {
				outcomes[j] = p.skippedOutcome(job.ID, docs[j].Filename, "batch cancelled")
			}
			break
		}
		i, doc := i, doc
		g.Go(func() error {
			outcomes[i] = p.evaluateOne(ctx, job.ID, req, doc)
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	report := &models.BatchReport{}
	for _, out := range outcomes {
		report.Add(out.Verdict)
	}
	log.Printf("[Pipeline] Batch done for job %s: %d passed, %d rejected", job.ID, report.PassedCount, report.RejectedCount)
	return report, outcomes
}

// Evaluate runs the full flow for a single document.
func (p *Pipeline) Evaluate(ctx context.Context, job *models.Job, doc Document) Outcome {
	return p.evaluateOne(ctx, job.ID, job.Requirements(), doc)
}

func (p *Pipeline) evaluateOne(ctx context.Context, jobID string, req models.JobRequirements, doc Document) Outcome {
	text, err := p.docs.ExtractText(doc.Filename, doc.Data)
	if err != nil || text == "" {
		if err != nil {
			log.Printf("[Pipeline] Text extraction failed for %s: %v", doc.Filename, err)
		}
		return p.rejectedOutcome(jobID, doc, nil, ReasonUnreadableFile)
	}

	profile := p.extractor.Extract(ctx, text, req.RequiredSkills)

	verdict := p.gate.Evaluate(profile, req)
	if !verdict.Passed {
		return p.rejectedOutcome(jobID, doc, profile, verdict.RejectionReason)
	}

	scoreCtx, cancel := context.WithTimeout(ctx, p.oracleTimeout)
	score := p.scorer.Score(scoreCtx, text, req)
	cancel()

	auditResult := p.auditor.Audit(text, req.DescriptionText, req.JobTitle)

	candidate := models.NewCandidateFromProfile(jobID, doc.Filename, profile)
	candidate.StoragePath = doc.StoragePath
	candidate.Status = models.CandidateStatusPassed
	candidate.MatchScore = &score.FinalScore
	candidate.ScoringReason = score.Narrative

	// Writes are detached from the batch context: once an evaluation
	// completed, its record lands even if the batch was cancelled
	// mid-flight.
	p.save(context.Background(), candidate)

	return Outcome{
		Candidate: candidate,
		Verdict:   verdict,
		Score:     &score,
		Audit:     &auditResult,
	}
}

func (p *Pipeline) rejectedOutcome(jobID string, doc Document, profile *models.StructuredProfile, reason string) Outcome {
	candidate := models.NewCandidateFromProfile(jobID, doc.Filename, profile)
	candidate.StoragePath = doc.StoragePath
	candidate.Status = models.CandidateStatusRejected
	candidate.RejectionReason = reason

	// Rejections are persisted too so HR can review why.
	p.save(context.Background(), candidate)

	return Outcome{
		Candidate: candidate,
		Verdict:   models.EligibilityVerdict{RejectionReason: reason},
	}
}

// skippedOutcome records a document that was never dispatched because
// the batch was cancelled. It is counted as rejected but not persisted.
func (p *Pipeline) skippedOutcome(jobID, filename, reason string) Outcome {
	candidate := models.NewCandidateFromProfile(jobID, filename, nil)
	candidate.Status = models.CandidateStatusRejected
	candidate.RejectionReason = reason
	return Outcome{
		Candidate: candidate,
		Verdict:   models.EligibilityVerdict{RejectionReason: reason},
	}
}

func (p *Pipeline) save(ctx context.Context, candidate *models.Candidate) {
	if p.store == nil {
		return
	}
	id, err := p.store.SaveCandidate(ctx, candidate)
	if err != nil {
		log.Printf("[Pipeline] Failed to persist candidate %s: %v", candidate.OriginalFilename, err)
		return
	}
	candidate.ID = id
}
