// Package tokenizer converts raw tweet text into normalized bag-of-words
// tokens and hosts the pure-text preprocessing step that runs before
// feature extraction.
package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits normalized text into tokens. Mentions, hashtags, and the
// placeholder tokens introduced by the Preprocessor survive as single
// tokens; other words are split on punctuation and the punctuation dropped.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// New creates a Tokenizer that filters the given stopwords.
func New(stopwords []string) *Tokenizer {
	stop := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stop[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stop}
}

// Tokenize converts one text into lowercase, accent-stripped tokens.
func (t *Tokenizer) Tokenize(text string) []string {
	text = cleanText(text)
	text = strings.ToLower(text)
	text = stripAccents(text)

	var tokens []string
	for _, word := range strings.Fields(text) {
		for _, tok := range splitWord(word) {
			if _, stop := t.stopwords[tok]; stop {
				continue
			}
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// splitWord keeps mentions and hashtags whole; everything else is split at
// punctuation, which is discarded.
func splitWord(word string) []string {
	if len(word) > 1 && (word[0] == '@' || word[0] == '#') {
		if trimmed := strings.TrimRight(word, punctuationSet); len(trimmed) > 1 {
			return []string{trimmed}
		}
		return nil
	}

	var tokens []string
	var current strings.Builder
	for _, r := range word {
		if isPunctuation(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
			continue
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

const punctuationSet = ".,!?;:'\")(]["

// cleanText removes control characters and collapses whitespace to spaces.
func cleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == 0 || r == 0xFFFD || isControl(r) {
			continue
		}
		if isWhitespace(r) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripAccents removes combining diacritical marks after NFD normalization.
func stripAccents(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFD.String(text) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isWhitespace(r rune) bool {
	if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func isControl(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return unicode.IsControl(r)
}

func isPunctuation(r rune) bool {
	if (r >= 33 && r <= 47) || (r >= 58 && r <= 64) ||
		(r >= 91 && r <= 96) || (r >= 123 && r <= 126) {
		return true
	}
	return unicode.IsPunct(r)
}
