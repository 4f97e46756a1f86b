package match

// Levenshtein returns the edit distance between a and b: the minimum number
// of single-byte insertions, deletions and substitutions turning one into
// the other. Memory is two rows of the shorter string's length.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	if a == "" {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			subst := prev[i-1]
			if a[i-1] != b[j-1] {
				subst++
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, subst)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity maps the edit distance to [0, 1]; 1 means identical.
func Similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}
