// Package search ranks persisted candidates against a free-text talent
// query, resolving role names and their aliases to skill sets.
package search

import (
	"sort"
	"strings"

	"github.com/shellasitanaya/backend-cv-analyzer/models"
	"github.com/shellasitanaya/backend-cv-analyzer/skills"
)

const (
	// fuzzyThreshold is the minimum composite score for a query to be
	// treated as a role reference rather than literal skill terms.
	fuzzyThreshold = 0.6

	// A literal skill hit outranks a loose role hit.
	skillWeight = 0.8
	roleWeight  = 0.2
)

// Index searches persisted candidates. The role table is read-only and
// shared across requests.
type Index struct {
	roles *skills.RoleMap
}

// New creates a talent search index over the given role table.
func New(roles *skills.RoleMap) *Index {
	return &Index{roles: roles}
}

// resolution is the interpreted form of a raw query.
type resolution struct {
	role       *skills.Role
	skillTerms []string // literal terms, either leftover tokens or the whole query
}

// Search resolves the query to a role and/or literal skill terms, scores
// every candidate, and returns matches sorted by distinct matched-skill
// count, tie-broken by stored fit score.
func (idx *Index) Search(query string, candidates []*models.Candidate) []models.TalentMatch {
	res := idx.resolve(strings.ToLower(strings.TrimSpace(query)))
	if res.role == nil && len(res.skillTerms) == 0 {
		return nil
	}

	var matches []models.TalentMatch
	for _, c := range candidates {
		if m, ok := idx.match(c, res); ok {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchCount != matches[j].MatchCount {
			return matches[i].MatchCount > matches[j].MatchCount
		}
		if matches[i].RankScore != matches[j].RankScore {
			return matches[i].RankScore > matches[j].RankScore
		}
		return matches[i].Candidate.Score() > matches[j].Candidate.Score()
	})
	return matches
}

// resolve tries, in order: exact whole-query alias match, fuzzy role
// match above the acceptance threshold, then literal skill terms. Query
// tokens not covered by the matched role's aliases stay literal, so an
// exact skill mention is never swallowed by a loose role hit.
func (idx *Index) resolve(query string) resolution {
	if query == "" {
		return resolution{}
	}

	for i := range idx.roles.Roles() {
		role := &idx.roles.Roles()[i]
		for _, alias := range role.Aliases {
			if query == alias {
				return resolution{role: role}
			}
		}
	}

	bestScore := 0.0
	var bestRole *skills.Role
	for i := range idx.roles.Roles() {
		role := &idx.roles.Roles()[i]
		for _, alias := range role.Aliases {
			if s := fuzzyScore(query, alias); s > bestScore {
				bestScore = s
				bestRole = role
			}
		}
	}

	tokens := strings.Fields(query)
	if bestRole != nil && bestScore >= fuzzyThreshold {
		return resolution{role: bestRole, skillTerms: leftoverTokens(tokens, bestRole)}
	}
	return resolution{skillTerms: tokens}
}

// fuzzyScore is a composite of exact word overlap, bidirectional
// substring containment and word prefix/suffix matching; the strongest
// signal wins.
func fuzzyScore(query, alias string) float64 {
	qWords := strings.Fields(query)
	aWords := strings.Fields(alias)

	overlap := 0
	for _, qw := range qWords {
		for _, aw := range aWords {
			if qw == aw {
				overlap++
				break
			}
		}
	}
	max := len(qWords)
	if len(aWords) > max {
		max = len(aWords)
	}
	wordScore := 0.0
	if max > 0 {
		wordScore = float64(overlap) / float64(max)
	}

	containScore := 0.0
	if strings.Contains(alias, query) {
		containScore = float64(len(query)) / float64(len(alias))
	} else if strings.Contains(query, alias) {
		containScore = float64(len(alias)) / float64(len(query))
	}

	partial := 0
	for _, qw := range qWords {
		for _, aw := range aWords {
			if len(qw) >= 3 && len(aw) >= 3 &&
				(strings.HasPrefix(aw, qw) || strings.HasPrefix(qw, aw) ||
					strings.HasSuffix(aw, qw) || strings.HasSuffix(qw, aw)) {
				partial++
				break
			}
		}
	}
	partialScore := 0.0
	if len(qWords) > 0 {
		partialScore = float64(partial) / float64(len(qWords)) * 0.8
	}

	score := wordScore
	if containScore > score {
		score = containScore
	}
	if partialScore > score {
		score = partialScore
	}
	return score
}

// leftoverTokens keeps the query tokens that no alias word of the
// matched role accounts for.
func leftoverTokens(tokens []string, role *skills.Role) []string {
	aliasWords := make(map[string]struct{})
	for _, alias := range role.Aliases {
		for _, w := range strings.Fields(alias) {
			aliasWords[w] = struct{}{}
		}
	}
	var leftover []string
	for _, tok := range tokens {
		if _, covered := aliasWords[tok]; !covered {
			leftover = append(leftover, tok)
		}
	}
	return leftover
}

func (idx *Index) match(c *models.Candidate, res resolution) (models.TalentMatch, bool) {
	matched := make(map[string]struct{})
	skillHits := 0
	for _, term := range res.skillTerms {
		if hit := matchSkill(c, term); hit != "" {
			matched[hit] = struct{}{}
			skillHits++
		}
	}

	roleHits := 0
	roleName := ""
	if res.role != nil {
		roleName = res.role.Canonical
		for _, term := range res.role.Skills {
			if hit := matchSkill(c, term); hit != "" {
				matched[hit] = struct{}{}
				roleHits++
			}
		}
	}

	if len(matched) == 0 {
		return models.TalentMatch{}, false
	}

	skillRatio := 0.0
	if len(res.skillTerms) > 0 {
		skillRatio = float64(skillHits) / float64(len(res.skillTerms))
	}
	roleRatio := 0.0
	if res.role != nil && len(res.role.Skills) > 0 {
		roleRatio = float64(roleHits) / float64(len(res.role.Skills))
	}

	matchedSkills := make([]string, 0, len(matched))
	for s := range matched {
		matchedSkills = append(matchedSkills, s)
	}
	sort.Strings(matchedSkills)

	return models.TalentMatch{
		Candidate:     c,
		MatchedSkills: matchedSkills,
		MatchCount:    len(matchedSkills),
		RoleMatched:   roleName,
		RankScore:     skillWeight*skillRatio + roleWeight*roleRatio,
	}, true
}

// matchSkill reports the candidate skill the term matches, empty when
// none. Matching is case-insensitive substring in either direction, so
// "react" finds "ReactJS" and "node.js" finds "node".
func matchSkill(c *models.Candidate, term string) string {
	for _, skill := range c.Skills {
		lower := strings.ToLower(skill)
		if strings.Contains(lower, term) || strings.Contains(term, lower) {
			return skill
		}
	}
	return ""
}
