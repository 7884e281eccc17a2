package extractor

import (
	"regexp"
	"strings"
)

// sectionHeaderWords mark lines that look like resume section labels
// rather than a person's name.
var sectionHeaderWords = []string{
	"member", "division", "tech stack", "curriculum vitae", "resume",
	"experience", "education", "skills", "summary", "profile", "contact",
}

var digitsRe = regexp.MustCompile(`\d{9,}`)

// nameFromLines recovers a candidate name without an entity tagger:
// prefer the first non-empty line when it carries no contact pattern,
// otherwise take the line immediately preceding a contact line, as long
// as that line is not itself a section header.
func nameFromLines(text string) string {
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !isContactLine(trimmed) && !isSectionHeader(trimmed) {
			return trimmed
		}
		break
	}

	// First line was contact info or a header; look for a line sitting
	// right above an email or phone number.
	prev := ""
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isContactLine(trimmed) && prev != "" && !isSectionHeader(prev) {
			return prev
		}
		prev = trimmed
	}

	return ""
}

func isContactLine(line string) bool {
	return emailRe.MatchString(line) || phoneRe.MatchString(line) ||
		urlRe.MatchString(line) || digitsRe.MatchString(line)
}

func isSectionHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range sectionHeaderWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
