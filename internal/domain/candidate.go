package domain

// Candidate is a job-seeker profile from the fixture pool, used for
// match scoring against postings.
type Candidate struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Skills       string `json:"skills"`
	Experience   string `json:"experience"`
	Education    string `json:"education"`
	Availability string `json:"availability"`
	Avatar       string `json:"avatar"`
}

// MatchResult is the outcome of scoring a candidate against a
// posting's requirements.
type MatchResult struct {
	MatchScore    int      `json:"match_score"`
	Compatibility string   `json:"compatibility"`
	MatchedTerms  int      `json:"matched_terms"`
	Strengths     []string `json:"strengths"`
	Gaps          []string `json:"gaps"`
}
