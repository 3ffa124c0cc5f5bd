package interpreter

import (
	"encoding/json"
	"strings"
)

// GeneratedPair is one word pair proposed by the model
type GeneratedPair struct {
	PublicWord     string `json:"public_word"`
	UndercoverWord string `json:"undercover_word"`
}

// ParseWordPairs reads a JSON array of word pairs, tolerating a markdown code
// fence around it. Entries with an empty or repeated word are dropped.
func ParseWordPairs(text string) ([]GeneratedPair, error) {
	content := strings.TrimSpace(text)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var raw []GeneratedPair
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, ErrMalformedWordPairs
	}

	pairs := make([]GeneratedPair, 0, len(raw))
	for _, p := range raw {
		public := strings.TrimSpace(p.PublicWord)
		undercover := strings.TrimSpace(p.UndercoverWord)
		if public == "" || undercover == "" || public == undercover {
			continue
		}
		pairs = append(pairs, GeneratedPair{PublicWord: public, UndercoverWord: undercover})
	}
	if len(pairs) == 0 {
		return nil, ErrNoValidWordPairs
	}

	return pairs, nil
}
