package enquire

import "strings"

// Filter decides whether an option stays visible for the current filter text.
// value is the option's display text and index its position in the original
// list. Filtering never reorders: the filtered view preserves the original
// relative order.
type Filter func(filter string, value string, index int) bool

// ContainsFilter is the default filter: case-insensitive substring match over
// the display text.
func ContainsFilter(filter, value string, _ int) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

// FuzzyFilter matches when every filter character appears in the value in
// order, ranking handled implicitly by the scoring below. Useful for long
// option lists where exact substrings are too strict.
func FuzzyFilter(filter, value string, _ int) bool {
	return fuzzyScore(strings.ToLower(filter), strings.ToLower(value)) > 0
}

// fuzzyScore rates how well input matches candidate. Zero means no match;
// exact, prefix and substring matches outrank character-by-character ones.
func fuzzyScore(input, candidate string) int {
	if input == "" {
		return 1
	}
	if candidate == "" {
		return 0
	}

	if input == candidate {
		return 1000
	}
	if strings.HasPrefix(candidate, input) {
		return 800 + len(input)*10
	}
	if strings.Contains(candidate, input) {
		return 500 + len(input)*5
	}

	// Every input character must appear in the candidate, in order.
	score := 0
	candidateIdx := 0
	for _, inputChar := range input {
		matched := false
		for candidateIdx < len(candidate) {
			if rune(candidate[candidateIdx]) == inputChar {
				score += 10
				candidateIdx++
				matched = true
				break
			}
			candidateIdx++
		}
		if !matched {
			return 0
		}
	}
	return score
}
