package match

// MinSimilarity is the lowest score a candidate needs to be suggested.
const MinSimilarity = 0.5

// Closest returns the candidate most similar to name. Ties go to the
// earlier candidate. ok is false when no candidate reaches MinSimilarity or
// name itself is a candidate.
func Closest(name string, candidates []string) (best string, ok bool) {
	bestScore := 0.0

	for _, c := range candidates {
		if c == name {
			return "", false
		}

		if score := Similarity(name, c); score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSimilarity {
		return "", false
	}

	return best, true
}
