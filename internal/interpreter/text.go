package interpreter

import (
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/undercover/internal/llm"
)

const (
	// MinSpeechLength and MaxSpeechLength bound an elimination speech, in characters
	MinSpeechLength = 10
	MaxSpeechLength = 150
)

var quotePairs = [][2]string{
	{`"`, `"`},
	{`'`, `'`},
	{"“", "”"},
	{"‘", "’"},
	{"「", "」"},
	{"『", "』"},
}

// stripQuotes removes one layer of matching surrounding quotes
func stripQuotes(text string) string {
	for _, q := range quotePairs {
		if len(text) >= len(q[0])+len(q[1]) && strings.HasPrefix(text, q[0]) && strings.HasSuffix(text, q[1]) {
			return strings.TrimSpace(text[len(q[0]) : len(text)-len(q[1])])
		}
	}
	return text
}

func clean(text string) string {
	text = llm.StripLeadIn(text)
	// models sometimes double quote
	text = stripQuotes(text)
	text = stripQuotes(text)
	return text
}

// CleanDescription turns raw model output into a description line
func CleanDescription(text string) (string, error) {
	cleaned := clean(text)
	if cleaned == "" {
		return "", ErrEmptyText
	}
	return cleaned, nil
}

// CleanSpeech turns raw model output into an elimination speech and enforces its length
func CleanSpeech(text string) (string, error) {
	cleaned := clean(text)
	if cleaned == "" {
		return "", ErrEmptyText
	}
	if !ValidSpeech(cleaned) {
		return "", ErrSpeechLength
	}
	return cleaned, nil
}

// ValidSpeech reports whether text is within the speech length bound
func ValidSpeech(text string) bool {
	n := utf8.RuneCountInString(text)
	return n >= MinSpeechLength && n <= MaxSpeechLength
}
