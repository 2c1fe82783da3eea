package answer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goodworkapp/goodwork/internal/gemini"
	"github.com/goodworkapp/goodwork/internal/profile"
)

// ParseJobMatches decodes a job-search reply into matches. The reply must be
// a JSON array of objects with the seven documented string fields. When the
// reply cannot be decoded but web-search citations exist, the citations are
// downgraded into minimal matches instead of failing the search.
func ParseJobMatches(raw string, sources []gemini.Citation) ([]profile.JobMatch, error) {
	cleaned := StripCodeFence(raw)
	if cleaned == "" && len(sources) == 0 {
		return nil, ErrEmptyResponse
	}
	if IsAppError(cleaned) {
		return nil, &AppError{Message: cleaned}
	}

	var matches []profile.JobMatch
	if err := json.Unmarshal([]byte(cleaned), &matches); err != nil {
		if fallback := matchesFromCitations(sources); len(fallback) > 0 {
			return fallback, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	valid := matches[:0]
	for _, m := range matches {
		if strings.TrimSpace(m.Title) == "" {
			continue
		}
		valid = append(valid, m)
	}
	if len(valid) == 0 {
		if fallback := matchesFromCitations(sources); len(fallback) > 0 {
			return fallback, nil
		}
		return nil, fmt.Errorf("%w: no usable entries", ErrInvalidJSON)
	}
	return valid, nil
}

func matchesFromCitations(sources []gemini.Citation) []profile.JobMatch {
	var out []profile.JobMatch
	for _, c := range sources {
		if strings.TrimSpace(c.URL) == "" {
			continue
		}
		title := strings.TrimSpace(c.Title)
		if title == "" {
			title = c.URL
		}
		out = append(out, profile.JobMatch{
			Title:          title,
			Company:        "N/A",
			Location:       "N/A",
			Snippet:        "Quelle aus der Websuche",
			Relevance:      "N/A",
			URL:            c.URL,
			MatchingDegree: "N/A",
		})
	}
	return out
}
