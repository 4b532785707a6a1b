// Package summary produces the refined text of a ranked section by keeping
// its leading sentences.
package summary

import "strings"

// Leading returns the first n sentences of text, joined by single spaces.
// A sentence ends at '.', '!' or '?' followed by whitespace or end of input.
func Leading(text string, n int) string {
	if n <= 0 {
		return ""
	}

	var sentences []string
	var b strings.Builder
	runes := []rune(text)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		b.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		atEnd := i == len(runes)-1
		if atEnd || isSpace(runes[i+1]) {
			if s := strings.TrimSpace(b.String()); s != "" {
				sentences = append(sentences, strings.Join(strings.Fields(s), " "))
			}
			b.Reset()
			if len(sentences) == n {
				return strings.Join(sentences, " ")
			}
		}
	}

	// Trailing text without sentence punctuation still counts.
	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, strings.Join(strings.Fields(s), " "))
	}
	if len(sentences) > n {
		sentences = sentences[:n]
	}
	return strings.Join(sentences, " ")
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
