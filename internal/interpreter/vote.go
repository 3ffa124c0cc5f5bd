package interpreter

import (
	"regexp"
	"strings"
)

// Candidate is a seat a vote may resolve to
type Candidate struct {
	SeatIndex int
	Name      string
}

// Vote is a parsed vote
type Vote struct {
	TargetSeat    int
	TargetName    string
	Justification string
}

// votePatterns are tried in order; the first capture group is the raw target
var votePatterns = []*regexp.Regexp{
	regexp.MustCompile(`投票给[：:]\s*([^，,。！？\n]+)`),
	regexp.MustCompile(`投票[：:]\s*([^，,。！？\n]+)`),
	regexp.MustCompile(`选择[：:]\s*([^，,。！？\n]+)`),
	regexp.MustCompile(`我投\s*([^，,。！？\n]+)`),
	regexp.MustCompile(`投\s*([^，,。！？\n]+)`),
}

var reasonPattern = regexp.MustCompile(`理由[：:]\s*(.+)`)

// ParseVote resolves free-form vote text to one of candidates. Candidates are
// expected to be the non-eliminated seats in seat order.
func ParseVote(text string, candidates []Candidate) (*Vote, error) {
	text = strings.TrimSpace(text)

	raw := extractTarget(text)
	if raw == "" {
		for _, c := range candidates {
			if c.Name != "" && strings.Contains(text, c.Name) {
				raw = c.Name
				break
			}
		}
	}
	if raw == "" {
		return nil, ErrNoVoteTarget
	}

	target, ok := resolve(raw, candidates)
	if !ok {
		return nil, ErrNoVoteTarget
	}

	return &Vote{
		TargetSeat:    target.SeatIndex,
		TargetName:    target.Name,
		Justification: justification(text),
	}, nil
}

func extractTarget(text string) string {
	for _, p := range votePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.Trim(strings.TrimSpace(m[1]), "[]【】「」\"“”")
		if raw != "" {
			return raw
		}
	}
	return ""
}

// resolve matches exactly first, then by containment in either direction
func resolve(raw string, candidates []Candidate) (Candidate, bool) {
	for _, c := range candidates {
		if c.Name == raw {
			return c, true
		}
	}
	for _, c := range candidates {
		if c.Name == "" {
			continue
		}
		if strings.Contains(raw, c.Name) || strings.Contains(c.Name, raw) {
			return c, true
		}
	}
	return Candidate{}, false
}

func justification(text string) string {
	if m := reasonPattern.FindStringSubmatch(text); m != nil {
		if reason := strings.TrimSpace(m[1]); reason != "" {
			return reason
		}
	}
	return text
}
