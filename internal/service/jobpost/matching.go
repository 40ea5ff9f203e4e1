package jobpost

import (
	"strings"

	"fl-jobs/internal/domain"
)

// Compatibility thresholds on the 0-100 match score.
const (
	excellentThreshold = 85
	goodThreshold      = 70
	fairThreshold      = 55
)

// scoreMatch computes a keyword-overlap score between the posting's
// requirements and the candidate's profile text. Deterministic: the
// same pair always scores the same.
func scoreMatch(requirements string, candidate *domain.Candidate) domain.MatchResult {
	jobTerms := tokenize(requirements)
	candidateTerms := tokenize(candidateText(candidate))

	common := 0
	for term := range jobTerms {
		if candidateTerms[term] {
			common++
		}
	}

	score := 0
	if len(jobTerms) > 0 {
		score = common * 100 / len(jobTerms)
	}
	if score > 100 {
		score = 100
	}

	return domain.MatchResult{
		MatchScore:    score,
		Compatibility: compatibilityLevel(score),
		MatchedTerms:  common,
		Strengths:     strengthsFor(common),
		Gaps:          gapsFor(score),
	}
}

func candidateText(c *domain.Candidate) string {
	return strings.Join([]string{c.Skills, c.Experience, c.Education, c.Availability}, " | ")
}

// tokenize lowercases and splits on anything that is not a letter or
// digit, dropping single-character noise.
func tokenize(s string) map[string]bool {
	terms := make(map[string]bool)
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	for _, f := range fields {
		if len(f) > 1 {
			terms[f] = true
		}
	}
	return terms
}

func compatibilityLevel(score int) string {
	switch {
	case score >= excellentThreshold:
		return "Excellent"
	case score >= goodThreshold:
		return "Good"
	case score >= fairThreshold:
		return "Fair"
	default:
		return "Limited"
	}
}

func strengthsFor(common int) []string {
	if common > 0 {
		return []string{"Profile contains relevant keywords"}
	}
	return []string{"Profile matches some requirements"}
}

func gapsFor(score int) []string {
	if score < goodThreshold {
		return []string{"Some requirements may not be covered"}
	}
	return []string{"Minor skill gaps"}
}
