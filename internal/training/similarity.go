package training

import "strings"

// Similarity scores two one-liners by bag-of-words overlap: the number
// of words of a that occur anywhere in b, divided by the longer word
// count. Case-insensitive, duplicates retained, result in [0,1]. This
// is deliberately coarse lexical matching, not embedding retrieval.
func Similarity(a, b string) float64 {
	wordsA := strings.Fields(strings.ToLower(a))
	wordsB := strings.Fields(strings.ToLower(b))

	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	inB := make(map[string]bool, len(wordsB))
	for _, w := range wordsB {
		inB[w] = true
	}

	matched := 0
	for _, w := range wordsA {
		if inB[w] {
			matched++
		}
	}

	longest := len(wordsA)
	if len(wordsB) > longest {
		longest = len(wordsB)
	}

	return float64(matched) / float64(longest)
}
