package extractor

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shellasitanaya/backend-cv-analyzer/models"
	"github.com/shellasitanaya/backend-cv-analyzer/skills"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(\+62|0)8[1-9][0-9]{7,10}\b`)
	urlRe   = regexp.MustCompile(`(?i)(https?://|www\.|linkedin\.com|github\.com)`)

	// GPA patterns in priority order; the first match wins. A keyword
	// pattern ("IPK: 3.5") always beats a bare slash pattern ("3.2/4.0").
	gpaPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:gpa|ipk)\s*:?\s*(\d[.,]\d+)`),
		regexp.MustCompile(`(\d[.,]\d+)\s*/\s*4(?:\.0)?\b`),
		regexp.MustCompile(`(?i)(\d[.,]\d+)\s*(?:gpa|ipk)`),
		regexp.MustCompile(`(\d[.,]\d+)\s*/\s*\d[.,]\d+`),
	}

	// Education keyword sets per level, checked from highest to lowest
	// so a higher qualification is never shadowed by a lower keyword
	// appearing elsewhere in the document.
	educationPatterns = []struct {
		level models.EducationLevel
		re    *regexp.Regexp
	}{
		{models.EducationS3, regexp.MustCompile(`(?i)\bs3\b|doctorate|doktor|ph\.?d`)},
		{models.EducationS2, regexp.MustCompile(`(?i)\bs2\b|\bmaster\b|magister|m\.?sc\b`)},
		{models.EducationS1, regexp.MustCompile(`(?i)\bs1\b|bachelor|sarjana|b\.?sc\b`)},
		{models.EducationD3, regexp.MustCompile(`(?i)\bd3\b|diploma`)},
	}

	// Work date ranges: "03/2020 - 2023" (optionally "03/2020 - 05/2023")
	// and open-ended "03/2020 - present".
	dateRangeRe   = regexp.MustCompile(`(\d{1,2})\s*/\s*(\d{4})\s*[-–—]\s*(?:(\d{1,2})\s*/\s*)?(\d{4})`)
	datePresentRe = regexp.MustCompile(`(?i)(\d{1,2})\s*/\s*(\d{4})\s*[-–—]?\s*(present|now|current|sekarang)`)

	// Explicit statements like "5 years of experience" act as a floor
	// under the computed date span.
	explicitYearsRe = regexp.MustCompile(`(?i)(\d{1,2})\+?\s*(?:years?|tahun)\s+(?:of\s+)?(?:\w+\s+)?(?:experience|pengalaman)`)

	educationHeaderRe  = regexp.MustCompile(`(?im)^\s*(education|pendidikan|academic background)\b`)
	experienceHeaderRe = regexp.MustCompile(`(?im)^\s*((?:work|professional)\s+experience|experience|pengalaman(?:\s+kerja)?|employment history)\b`)
)

// regexParser holds the shared regex extraction logic used by both the
// NER+regex strategy and the pure regex strategy.
type regexParser struct {
	vocab *skills.Vocabulary
	now   func() time.Time
}

func newRegexParser(vocab *skills.Vocabulary, now func() time.Time) *regexParser {
	if vocab == nil {
		vocab = skills.DefaultVocabulary()
	}
	if now == nil {
		now = time.Now
	}
	return &regexParser{vocab: vocab, now: now}
}

// parse fills every field a regex pass can recover. Name extraction is
// left to the callers: the NER strategy uses the tagger, the pure regex
// strategy uses line heuristics only.
func (p *regexParser) parse(text string, requiredSkills []string) *models.StructuredProfile {
	profile := &models.StructuredProfile{
		Email:          p.extractEmail(text),
		Phone:          p.extractPhone(text),
		GPA:            p.extractGPA(text),
		EducationLevel: p.detectEducationLevel(text),
		Skills:         p.extractSkills(text, requiredSkills),
	}

	years, history := p.extractExperience(text)
	profile.TotalExperienceYears = years
	profile.WorkHistory = history

	return profile
}

func (p *regexParser) extractEmail(text string) string {
	return emailRe.FindString(text)
}

func (p *regexParser) extractPhone(text string) string {
	return phoneRe.FindString(text)
}

// extractGPA tries each pattern in priority order and normalizes the
// decimal comma. Values outside [0.0, 4.0] are rejected as noise.
func (p *regexParser) extractGPA(text string) *float64 {
	for _, re := range gpaPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", ".")
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 || value > 4.0 {
			continue
		}
		return &value
	}
	return nil
}

func (p *regexParser) detectEducationLevel(text string) models.EducationLevel {
	for _, ep := range educationPatterns {
		if ep.re.MatchString(text) {
			return ep.level
		}
	}
	return ""
}

// extractSkills matches by case-insensitive substring search against the
// supplied required skills, or the general vocabulary when none are
// given. Edit distance is deliberately not used.
func (p *regexParser) extractSkills(text string, requiredSkills []string) []string {
	terms := requiredSkills
	if len(terms) == 0 {
		terms = p.vocab.Terms()
	}

	lower := strings.ToLower(text)
	var found []string
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(term)) {
			found = append(found, term)
		}
	}
	return normalizeSkills(found)
}

// dateSpan is one recovered work date range with its position in the
// document, used to decide which section it belongs to.
type dateSpan struct {
	start  time.Time
	end    time.Time
	offset int
}

// extractExperience computes the full-career span between the earliest
// work start date and the latest end date. Ranges inside an education
// section are excluded unless they also fall inside a later experience
// section, so degree years are not counted as work years. Overlapping
// roles never double-count because only the outer span matters.
func (p *regexParser) extractExperience(text string) (*int, []models.WorkEntry) {
	eduStart, eduEnd := sectionBounds(text, educationHeaderRe, experienceHeaderRe)
	nowT := p.now()

	var spans []dateSpan

	for _, m := range dateRangeRe.FindAllStringSubmatchIndex(text, -1) {
		sm := submatches(text, m)
		startMonth, _ := strconv.Atoi(sm[1])
		startYear, _ := strconv.Atoi(sm[2])
		endYear, _ := strconv.Atoi(sm[4])
		endMonth := 12
		if sm[3] != "" {
			endMonth, _ = strconv.Atoi(sm[3])
		}
		span, ok := buildSpan(startMonth, startYear, endMonth, endYear, m[0])
		if ok {
			spans = append(spans, span)
		}
	}

	for _, m := range datePresentRe.FindAllStringSubmatchIndex(text, -1) {
		sm := submatches(text, m)
		startMonth, _ := strconv.Atoi(sm[1])
		startYear, _ := strconv.Atoi(sm[2])
		span, ok := buildSpan(startMonth, startYear, int(nowT.Month()), nowT.Year(), m[0])
		if ok {
			spans = append(spans, span)
		}
	}

	// The two regex passes interleave, so restore document order before
	// building the history.
	sort.Slice(spans, func(i, j int) bool { return spans[i].offset < spans[j].offset })

	var history []models.WorkEntry
	var minStart, maxEnd time.Time
	for _, s := range spans {
		if inEducationSection(s.offset, eduStart, eduEnd) {
			continue
		}
		history = append(history, models.WorkEntry{
			StartDate: s.start.Format("01/2006"),
			EndDate:   s.end.Format("01/2006"),
		})
		if minStart.IsZero() || s.start.Before(minStart) {
			minStart = s.start
		}
		if s.end.After(maxEnd) {
			maxEnd = s.end
		}
	}

	var years *int
	if !minStart.IsZero() && maxEnd.After(minStart) {
		days := maxEnd.Sub(minStart).Hours() / 24
		v := int(math.Round(days / 365.25))
		years = &v
	}

	// An explicit "N years of experience" sentence acts as a floor:
	// the larger of the two values wins.
	if m := explicitYearsRe.FindStringSubmatch(text); m != nil {
		if stated, err := strconv.Atoi(m[1]); err == nil {
			if years == nil || stated > *years {
				years = &stated
			}
		}
	}

	return years, history
}

func buildSpan(startMonth, startYear, endMonth, endYear, offset int) (dateSpan, bool) {
	if startMonth < 1 || startMonth > 12 || endMonth < 1 || endMonth > 12 {
		return dateSpan{}, false
	}
	start := time.Date(startYear, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, time.Month(endMonth), 1, 0, 0, 0, 0, time.UTC)
	if end.Before(start) {
		return dateSpan{}, false
	}
	return dateSpan{start: start, end: end, offset: offset}, true
}

func submatches(text string, idx []int) []string {
	out := make([]string, len(idx)/2)
	for i := 0; i < len(idx); i += 2 {
		if idx[i] >= 0 {
			out[i/2] = text[idx[i]:idx[i+1]]
		}
	}
	return out
}

// sectionBounds locates the education section: it starts at the
// education header and ends at the next experience header after it (or
// the end of the document). Returns (-1, -1) when there is no education
// section.
func sectionBounds(text string, eduRe, expRe *regexp.Regexp) (int, int) {
	edu := eduRe.FindStringIndex(text)
	if edu == nil {
		return -1, -1
	}
	end := len(text)
	for _, exp := range expRe.FindAllStringIndex(text, -1) {
		if exp[0] > edu[0] {
			end = exp[0]
			break
		}
	}
	return edu[0], end
}

func inEducationSection(offset, eduStart, eduEnd int) bool {
	return eduStart >= 0 && offset >= eduStart && offset < eduEnd
}

// regexStrategy is the last-resort strategy: the shared regex logic with
// name extraction limited to line heuristics.
type regexStrategy struct {
	regex *regexParser
}

func (s *regexStrategy) Name() string { return "regex" }

func (s *regexStrategy) Extract(_ context.Context, text string, requiredSkills []string) (*models.StructuredProfile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	profile := s.regex.parse(text, requiredSkills)
	profile.Name = nameFromLines(text)
	return profile, nil
}
