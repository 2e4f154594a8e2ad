package content

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

const (
	trustedScore = 0.8
	defaultScore = 0.6
)

// verify scores each candidate source, sorts by credibility (stable,
// descending) and records the mean as the run's quality score. Pure
// over SearchResults.
func (p *Pipeline) verify(_ context.Context, s *core.ContentState) error {
	verified := make([]core.VerifiedSource, 0, len(s.SearchResults))
	for _, r := range s.SearchResults {
		verified = append(verified, core.VerifiedSource{
			SearchResult:     r,
			CredibilityScore: credibilityFor(r.URL),
		})
	}

	sort.SliceStable(verified, func(i, j int) bool {
		return verified[i].CredibilityScore > verified[j].CredibilityScore
	})

	var total float64
	for _, v := range verified {
		total += v.CredibilityScore
	}
	s.VerifiedSources = verified
	if len(verified) > 0 {
		s.QualityScore = total / float64(len(verified))
	} else {
		s.QualityScore = 0
	}

	p.log.Info("sources verified", "run_id", s.RunID, "quality_score", s.QualityScore)
	return nil
}

// credibilityFor assigns the heuristic trust weight for a source URL:
// institutional domain suffixes (edu, gov, org) rate higher.
func credibilityFor(raw string) float64 {
	u, err := url.Parse(raw)
	if err != nil {
		return defaultScore
	}
	host := strings.ToLower(u.Hostname())
	for _, suffix := range []string{"edu", "gov", "org"} {
		if strings.HasSuffix(host, "."+suffix) || host == suffix {
			return trustedScore
		}
	}
	return defaultScore
}
