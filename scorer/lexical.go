package scorer

import (
	"math"
	"regexp"
	"strings"
)

// stopwords is the usual English list, trimmed to terms that actually
// show up in resumes and job descriptions.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {},
	"is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "that": {},
	"the": {}, "to": {}, "was": {}, "were": {}, "will": {}, "with": {},
	"we": {}, "you": {}, "your": {}, "our": {}, "this": {}, "their": {},
	"they": {}, "not": {}, "but": {}, "can": {}, "all": {}, "who": {},
	"been": {}, "if": {}, "into": {}, "than": {}, "then": {}, "them": {},
	"also": {}, "such": {}, "other": {}, "more": {}, "any": {}, "about": {},
}

var tokenRe = regexp.MustCompile(`[a-z0-9][a-z0-9+#.\-]*`)

// LexicalScorer rates CV/JD similarity with TF-IDF cosine similarity.
// It is fully deterministic and needs no external service, which makes
// it the fallback when the rubric oracle is unavailable.
type LexicalScorer struct{}

// NewLexicalScorer creates the TF-IDF fallback scorer.
func NewLexicalScorer() *LexicalScorer {
	return &LexicalScorer{}
}

// Score returns the cosine similarity of the two texts scaled to
// [0, 100] and rounded to two decimals. Either text being empty (or
// reduced to nothing after stopword removal) scores 0.
func (s *LexicalScorer) Score(cvText, jobDescription string) float64 {
	cvTokens := tokenize(cvText)
	jdTokens := tokenize(jobDescription)
	if len(cvTokens) == 0 || len(jdTokens) == 0 {
		return 0.0
	}

	cvTF := termFrequencies(cvTokens)
	jdTF := termFrequencies(jdTokens)
	idf := inverseDocFrequencies(cvTF, jdTF)

	cvVec := weigh(cvTF, idf)
	jdVec := weigh(jdTF, idf)

	return round2(cosine(cvVec, jdVec) * 100)
}

func tokenize(text string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, t := range raw {
		if _, stop := stopwords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

func termFrequencies(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	total := float64(len(tokens))
	for t := range tf {
		tf[t] /= total
	}
	return tf
}

// inverseDocFrequencies computes smoothed IDF over the two-document
// corpus, so shared terms are downweighted but never zeroed out.
func inverseDocFrequencies(docs ...map[string]float64) map[string]float64 {
	df := make(map[string]float64)
	for _, doc := range docs {
		for t := range doc {
			df[t]++
		}
	}
	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for t, count := range df {
		idf[t] = math.Log((n+1)/(count+1)) + 1
	}
	return idf
}

func weigh(tf, idf map[string]float64) map[string]float64 {
	vec := make(map[string]float64, len(tf))
	for t, f := range tf {
		vec[t] = f * idf[t]
	}
	return vec
}

func cosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for t, wa := range a {
		normA += wa * wa
		if wb, ok := b[t]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
