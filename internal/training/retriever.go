package training

const (
	maxSimilar          = 3
	similarityThreshold = 0.6
)

// FindSimilar returns up to three examples relevant to the query: an
// example matches when its WCAG code equals the query code exactly, or
// its one-liner overlaps the query one-liner above the threshold.
// Matches are returned in store order, truncated at three. This is
// first-match truncation, not top-3 by score; with a small corpus the
// cheap scan wins over ranking.
func (s *Store) FindSimilar(oneLiner, wcag string) []Example {
	var matches []Example
	for _, ex := range s.List() {
		if ex.WCAG == wcag || Similarity(ex.OneLiner, oneLiner) > similarityThreshold {
			matches = append(matches, ex)
			if len(matches) == maxSimilar {
				break
			}
		}
	}
	return matches
}
