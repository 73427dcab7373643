package util

import "strings"

const (
	minTokenRunes   = 3
	maxSearchTokens = 12
)

func isTokenRune(r rune) bool {
	if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
		return true
	}
	switch r {
	case 'ç', 'ğ', 'ı', 'ö', 'ş', 'ü':
		return true
	}
	return false
}

// SearchTokens normalizes free text into the token set used by duplicate
// detection: lowercase runs of letters/digits (Turkish letters included),
// at least 3 runes long, deduplicated in scan order, capped at 12.
func SearchTokens(s string) []string {
	if s == "" {
		return nil
	}

	seen := make(map[string]struct{})
	tokens := make([]string, 0, maxSearchTokens)

	var current []rune
	flush := func() {
		if len(current) >= minTokenRunes && len(tokens) < maxSearchTokens {
			tok := string(current)
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				tokens = append(tokens, tok)
			}
		}
		current = current[:0]
	}

	for _, r := range strings.ToLower(s) {
		if isTokenRune(r) {
			current = append(current, r)
			continue
		}
		flush()
		if len(tokens) == maxSearchTokens {
			return tokens
		}
	}
	flush()

	return tokens
}
