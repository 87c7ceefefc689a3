package keyword

import (
	"sort"
	"strings"
	"unicode"
)

// MaxKeywords limits how many terms Extract returns.
const MaxKeywords = 10

// minTokenLength filters out short tokens before counting.
const minTokenLength = 4

var stopWords = map[string]struct{}{}

func init() {
	list := []string{
		"a", "an", "the", "and", "or", "but", "is", "are", "was", "were",
		"in", "on", "at", "to", "for", "with", "by", "about", "like", "from",
		"of", "as", "i", "you", "he", "she", "it", "we", "they", "this",
		"that", "these", "those", "my", "your", "his", "her", "its", "our", "their",
		"what", "which", "who", "whom", "whose", "when", "where", "why", "how", "all",
		"any", "both", "each", "few", "more", "most", "some", "such", "no", "nor",
		"not", "only", "own", "same", "so", "than", "too", "very", "can", "will",
		"just", "should", "now", "would", "could", "been", "being", "have", "has", "had",
		"does", "doing", "did", "them", "then", "there", "here", "because", "while", "after",
		"before", "again", "further", "once", "against", "between", "into", "through", "during", "above",
		"below", "under", "over", "other",
	}
	for _, w := range list {
		stopWords[w] = struct{}{}
	}
}

// Extract returns the most frequent salient terms across the given messages,
// ordered by descending frequency. Ties keep first-occurrence order. At most
// MaxKeywords terms are returned.
func Extract(messages []string) []string {
	counts := make(map[string]int)
	var order []string

	for _, message := range messages {
		for _, token := range tokenize(message) {
			if len(token) < minTokenLength {
				continue
			}
			if _, stop := stopWords[token]; stop {
				continue
			}
			if _, seen := counts[token]; !seen {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	firstSeen := make(map[string]int, len(order))
	for i, token := range order {
		firstSeen[token] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > MaxKeywords {
		order = order[:MaxKeywords]
	}
	return order
}

// tokenize lowercases the input, deletes everything except letters, digits and
// whitespace, and splits on whitespace. Punctuation inside a word is removed
// rather than treated as a separator, so "don't" yields the token "dont".
func tokenize(message string) []string {
	lowered := strings.ToLower(message)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}
