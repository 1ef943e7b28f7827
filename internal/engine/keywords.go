package engine

import "strings"

// GenerateSearchKeywords tokenizes an item name for prefix/substring lookup.
// The name is lowercased, every character outside [a-z0-9] and whitespace is
// replaced with a space, and the result is split into unique tokens plus the
// full normalized phrase ("Semi-Skimmed Milk!" -> "semi", "skimmed", "milk",
// "semi skimmed milk").
func GenerateSearchKeywords(name string) []string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	tokens := strings.Fields(b.String())
	if len(tokens) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tokens)+1)
	keywords := make([]string, 0, len(tokens)+1)
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		keywords = append(keywords, t)
	}

	phrase := strings.Join(tokens, " ")
	if _, ok := seen[phrase]; !ok {
		keywords = append(keywords, phrase)
	}
	return keywords
}
