// Package skills holds the static skill vocabulary, per-role alias table
// and per-job-type keyword lists. Everything here is loaded once at
// process start and passed by reference into the extractor, auditor and
// talent search index; it is never mutated at runtime.
package skills

import "strings"

// Vocabulary is the general skill keyword list used when a job does not
// supply its own required skills.
type Vocabulary struct {
	terms []string
}

// DefaultVocabulary returns the built-in general skill vocabulary.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{terms: generalSkills}
}

// Terms returns a copy of the vocabulary terms, lowercase.
func (v *Vocabulary) Terms() []string {
	return append([]string(nil), v.terms...)
}

// Contains reports whether the term is part of the vocabulary.
func (v *Vocabulary) Contains(term string) bool {
	lower := strings.ToLower(term)
	for _, t := range v.terms {
		if t == lower {
			return true
		}
	}
	return false
}

// Autocomplete returns up to limit vocabulary terms containing the query,
// case-insensitively.
func (v *Vocabulary) Autocomplete(query string, limit int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []string
	for _, t := range v.terms {
		if strings.Contains(t, query) {
			out = append(out, t)
			if len(out) >= limit {
				break
			}
		}
	}
	return out
}

var generalSkills = []string{
	"python", "java", "c++", "c#", "golang", "javascript", "typescript",
	"react", "reactjs", "angular", "vue", "node.js", "nodejs",
	"flask", "django", "spring boot", "laravel", "html", "css", "tailwind",
	"sql", "mysql", "postgresql", "mongodb", "database",
	"docker", "kubernetes", "git", "aws", "gcp", "azure",
	"api", "rest api", "graphql", "microservices",
	"machine learning", "deep learning", "data analysis", "data science",
	"pandas", "numpy", "tensorflow", "pytorch", "scikit-learn",
	"business intelligence", "power bi", "tableau", "excel", "statistics",
	"airflow", "spark", "hadoop", "kafka", "etl",
	"seo", "digital marketing", "content marketing", "sem", "google analytics",
	"kotlin", "swift", "flutter", "react native", "android", "ios",
}

// Role groups the aliases and the skill vocabulary typically associated
// with a canonical role.
type Role struct {
	Canonical string
	Aliases   []string
	Skills    []string
}

// RoleMap is the immutable role-alias table used by talent search.
type RoleMap struct {
	roles []Role
}

// DefaultRoleMap returns the built-in role-alias table.
func DefaultRoleMap() *RoleMap {
	return &RoleMap{roles: defaultRoles}
}

// Roles returns the role entries. Callers must not modify the result.
func (m *RoleMap) Roles() []Role {
	return m.roles
}

var defaultRoles = []Role{
	{
		Canonical: "web development",
		Aliases:   []string{"web development", "web dev", "frontend", "web developer"},
		Skills: []string{
			"html", "css", "javascript", "react", "angular", "vue",
			"node.js", "php", "laravel", "django", "ruby on rails", "frontend",
		},
	},
	{
		Canonical: "software engineer",
		Aliases:   []string{"software engineer", "soft eng", "swe", "backend", "software developer"},
		Skills: []string{
			"python", "java", "c++", "c#", "golang", "backend", "api",
			"docker", "kubernetes", "aws", "gcp", "azure", "microservices",
		},
	},
	{
		Canonical: "business analyst",
		Aliases:   []string{"business analyst", "ba", "bi analyst"},
		Skills: []string{
			"sql", "excel", "power bi", "tableau", "statistics", "data analysis", "metabase",
		},
	},
	{
		Canonical: "data scientist",
		Aliases:   []string{"data scientist", "data science", "ds"},
		Skills: []string{
			"python", "r", "sql", "tensorflow", "pytorch", "scikit-learn",
			"pandas", "numpy", "machine learning", "deep learning",
		},
	},
	{
		Canonical: "mobile developer",
		Aliases:   []string{"mobile developer", "mobile dev", "android dev", "ios dev"},
		Skills: []string{
			"kotlin", "swift", "react native", "flutter", "android", "ios",
		},
	},
}

// JobTypeKeywords returns the static keyword list for a recognized
// job-type tag, or nil when the tag is unknown. Matching is substring
// based so "it data engineer - taf" still selects the data engineer list.
func JobTypeKeywords(jobType string) []string {
	lower := strings.ToLower(jobType)
	switch {
	case strings.Contains(lower, "data engineer"):
		return dataEngineerSkills
	case strings.Contains(lower, "business analyst"):
		return businessAnalystSkills
	case strings.Contains(lower, "data scientist"), strings.Contains(lower, "data science"):
		return dataScientistSkills
	default:
		return nil
	}
}

var dataEngineerSkills = []string{
	"python", "sql", "airflow", "spark", "hadoop", "kafka", "etl",
	"data warehouse", "bigquery", "redshift", "dbt", "scala",
}

var businessAnalystSkills = []string{
	"sql", "excel", "power bi", "tableau", "statistics", "data analysis",
	"requirements gathering", "stakeholder management", "metabase",
}

var dataScientistSkills = []string{
	"python", "r", "sql", "machine learning", "deep learning",
	"tensorflow", "pytorch", "pandas", "numpy", "statistics",
}
