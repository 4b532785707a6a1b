package outline

import (
	"regexp"
	"strings"
)

// boldIndicators are font-name substrings that mark a bold face. PDF text
// carries no style flags at this layer, so the font name is the only signal.
var boldIndicators = []string{"bold", "black", "heavy", "demi", "extrab", "fett", "bd", "strong"}

// isBoldFont reports whether the font name denotes a bold face.
func isBoldFont(font string) bool {
	name := strings.ToLower(font)
	for _, ind := range boldIndicators {
		if strings.Contains(name, ind) {
			return true
		}
	}
	return false
}

// listItemPatterns match lines that are list entries rather than headings.
var listItemPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*\d+\.\s+[a-z]`),
	regexp.MustCompile(`^\s*•\s+`),
	regexp.MustCompile(`^\s*-\s+`),
	regexp.MustCompile(`^\s*\*\s+`),
}

func isListItem(text string) bool {
	for _, p := range listItemPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// numberingPatterns map section-number shapes to heading levels:
// "1. Introduction" is H1, "2.1 Audience" is H2, "3.2.1 Details" is H3,
// and "Appendix A: Title" is H1.
var numberingPatterns = []struct {
	re    *regexp.Regexp
	level string
}{
	{regexp.MustCompile(`^\s*\d+\.\s+[A-Z]`), "H1"},
	{regexp.MustCompile(`^\s*\d+\.\d+\s+[A-Z]`), "H2"},
	{regexp.MustCompile(`^\s*\d+\.\d+\.\d+\s+[A-Z]`), "H3"},
	{regexp.MustCompile(`^\s*[A-Za-z]+\s+\d+\s*[:.]\s+[A-Z]`), "H1"},
}

// levelByNumbering returns the level implied by a section-number prefix, or
// the empty string when the text carries none.
func levelByNumbering(text string) string {
	for _, p := range numberingPatterns {
		if p.re.MatchString(text) {
			return p.level
		}
	}
	return ""
}

// commonHeadingPatterns match section names that are headings regardless of
// their visual appearance. Applied to the lowercased text.
var commonHeadingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^table\s+of\s+contents\s*$`),
	regexp.MustCompile(`^references\s*$`),
	regexp.MustCompile(`^acknowledgements\s*$`),
	regexp.MustCompile(`^revision\s+history\s*$`),
	regexp.MustCompile(`^summary\s*$`),
	regexp.MustCompile(`^background\s*$`),
	regexp.MustCompile(`^appendix\s+[a-z]\s*:`),
	regexp.MustCompile(`^appendix\s+[a-z]\s*$`),
}

// levelByCommonName returns "H1" for well-known top-level section names.
func levelByCommonName(text string) string {
	lower := strings.ToLower(text)
	for _, p := range commonHeadingPatterns {
		if p.MatchString(lower) {
			return "H1"
		}
	}
	return ""
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// normalizeText collapses whitespace runs and trims the result.
func normalizeText(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
