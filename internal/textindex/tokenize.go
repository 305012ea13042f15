// Package textindex builds term-weighted vector spaces from document corpora
// and projects free text into them for similarity comparison.
package textindex

import (
	"regexp"
	"strings"
)

// tokenPattern matches alphanumeric runs plus the symbol characters that
// appear inside technical skill names, so tokens like "c++", "ci/cd" and
// "c#" survive tokenization intact.
var tokenPattern = regexp.MustCompile(`[a-z0-9_+#/.-]+`)

// hasAlnum reports whether the token contains at least one letter or digit.
// Pure-symbol fragments like "--" carry no signal and are dropped.
func hasAlnum(tok string) bool {
	for _, r := range tok {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return true
		}
	}
	return false
}

// Tokenize lowercases text and splits it into matchable terms.
// Stop words (if any) are removed after lowercasing.
func Tokenize(text string, stopWords map[string]struct{}) []string {
	lowered := strings.ToLower(text)
	raw := tokenPattern.FindAllString(lowered, -1)

	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		// Trim punctuation that is only meaningful mid-token; "+" and "#"
		// stay because they are significant at token edges (c++, c#).
		tok = strings.Trim(tok, "./-_")
		if tok == "" || !hasAlnum(tok) {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out
}
