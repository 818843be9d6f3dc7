package extract

import (
	"math"
	"sort"
	"strings"
)

// MatchResult describes how an applicant's skills cover a job's skills.
type MatchResult struct {
	// Score is the covered share of job skills in percent, rounded to two decimals.
	Score   float64
	Matched []string
	Missing []string
}

// ScoreMatch compares job and applicant skill lists case-insensitively.
// Blank entries are ignored. A job without skills scores 0.
func ScoreMatch(jobSkills, applicantSkills []string) MatchResult {
	job := skillSet(jobSkills)
	applicant := skillSet(applicantSkills)

	res := MatchResult{Matched: []string{}, Missing: []string{}}
	if len(job) == 0 {
		return res
	}
	for s := range job {
		if _, ok := applicant[s]; ok {
			res.Matched = append(res.Matched, s)
		} else {
			res.Missing = append(res.Missing, s)
		}
	}
	sort.Strings(res.Matched)
	sort.Strings(res.Missing)

	raw := float64(len(res.Matched)) / float64(len(job)) * 100
	res.Score = math.Round(raw*100) / 100
	return res
}

func skillSet(skills []string) map[string]struct{} {
	out := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out[s] = struct{}{}
	}
	return out
}
