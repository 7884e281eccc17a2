// Package audit checks a résumé against a job description for keyword
// coverage and ATS formatting compatibility.
package audit

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/shellasitanaya/backend-cv-analyzer/models"
	"github.com/shellasitanaya/backend-cv-analyzer/skills"
)

const (
	penaltyMissingContact = 25
	penaltyMissingSection = 10
	penaltyTooShort       = 10
	penaltyTooLong        = 5
	penaltyColumnLayout   = 15

	minWordCount = 150
	maxWordCount = 1000

	// columnCharThreshold is how many tab/pipe characters suggest a
	// multi-column layout an ATS cannot read linearly.
	columnCharThreshold = 10
)

var requiredSections = []string{"experience", "education", "skills", "summary"}

var (
	auditEmailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	auditPhoneRe = regexp.MustCompile(`(\+62|0)8[1-9][0-9]{7,10}\b`)
	wordRe       = regexp.MustCompile(`[a-z0-9][a-z0-9+#.\-]*`)
)

// Function words excluded from the job-description keyword set.
var functionWords = map[string]struct{}{
	"and": {}, "the": {}, "for": {}, "with": {}, "are": {}, "you": {},
	"our": {}, "your": {}, "will": {}, "have": {}, "has": {}, "that": {},
	"this": {}, "from": {}, "who": {}, "can": {}, "must": {}, "should": {},
	"about": {}, "been": {}, "their": {}, "they": {}, "not": {}, "but": {},
	"all": {}, "any": {}, "into": {}, "than": {}, "also": {}, "such": {},
	"more": {}, "other": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"would": {}, "was": {}, "were": {}, "its": {}, "per": {}, "via": {},
	"job": {}, "role": {}, "team": {}, "work": {}, "working": {},
	"looking": {}, "hiring": {}, "candidate": {}, "candidates": {},
	"required": {}, "requirements": {}, "plus": {}, "strong": {},
	"good": {}, "years": {}, "year": {}, "experience": {},
}

// Auditor computes keyword coverage and an ATS-friendliness score.
type Auditor struct {
	vocab *skills.Vocabulary
}

// New creates an auditor backed by the shared skill vocabulary.
func New(vocab *skills.Vocabulary) *Auditor {
	return &Auditor{vocab: vocab}
}

// Audit builds the keyword set from the job description, checks each
// keyword against the résumé, and scores ATS formatting. jobType is an
// optional tag ("data engineer", "business analyst", ...) that pulls in
// a static keyword list when recognized.
func (a *Auditor) Audit(cvText, jobDescription, jobType string) models.AuditResult {
	keywords := a.keywordSet(jobDescription, jobType)

	cvLower := strings.ToLower(cvText)
	matched := make([]string, 0, len(keywords))
	missing := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if strings.Contains(cvLower, kw) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	pct := 0.0
	if len(keywords) > 0 {
		pct = math.Round(float64(len(matched))/float64(len(keywords))*10000) / 100
	}

	return models.AuditResult{
		Matched:         matched,
		Missing:         missing,
		MatchPercentage: pct,
		ATS:             a.checkATS(cvText, cvLower),
	}
}

// keywordSet unions the job description's content words, the static
// per-job-type list, and every general vocabulary term mentioned in the
// job description. Returned sorted for stable output.
func (a *Auditor) keywordSet(jobDescription, jobType string) []string {
	jdLower := strings.ToLower(jobDescription)
	set := make(map[string]struct{})

	for _, token := range wordRe.FindAllString(jdLower, -1) {
		if len(token) < 3 {
			continue
		}
		if _, skip := functionWords[token]; skip {
			continue
		}
		set[token] = struct{}{}
	}

	for _, kw := range skills.JobTypeKeywords(jobType) {
		set[strings.ToLower(kw)] = struct{}{}
	}

	for _, term := range a.vocab.Terms() {
		if strings.Contains(jdLower, term) {
			set[term] = struct{}{}
		}
	}

	keywords := make([]string, 0, len(set))
	for kw := range set {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return keywords
}

func (a *Auditor) checkATS(cvText, cvLower string) models.ATSResult {
	score := 100
	var findings []string

	if !auditEmailRe.MatchString(cvText) && !auditPhoneRe.MatchString(cvText) {
		score -= penaltyMissingContact
		findings = append(findings, "No email address or phone number found")
	}

	for _, section := range requiredSections {
		if !strings.Contains(cvLower, section) {
			score -= penaltyMissingSection
			findings = append(findings, "Missing section header: "+section)
		}
	}

	words := len(strings.Fields(cvText))
	switch {
	case words < minWordCount:
		score -= penaltyTooShort
		findings = append(findings, "Resume is too short for most screening systems")
	case words > maxWordCount:
		score -= penaltyTooLong
		findings = append(findings, "Resume is too long for most screening systems")
	}

	if strings.Count(cvText, "\t")+strings.Count(cvText, "|") >= columnCharThreshold {
		score -= penaltyColumnLayout
		findings = append(findings, "Tab or pipe characters suggest a multi-column layout")
	}

	if score < 0 {
		score = 0
	}
	return models.ATSResult{Score: score, Findings: findings}
}
