package match

import "sort"

// DefaultThreshold is the minimum score of a useful suggestion.
const DefaultThreshold = 0.6

// Candidate is a known name scored against a query.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the first n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var out CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			out = append(out, cand)
		}
	}

	return out
}

// Names returns the candidate names in list order.
func (c CandidateList) Names() []string {
	out := make([]string, 0, len(c))
	for _, cand := range c {
		out = append(out, cand.Name)
	}

	return out
}

// Rank scores every known name against query and sorts the result. A name
// scores the better of its full and unqualified forms, so "Kind" finds
// "Shape::Kind".
func Rank(query string, known []string) CandidateList {
	q := NormalizeName(query)
	list := make(CandidateList, 0, len(known))

	for _, name := range known {
		if name == query {
			continue
		}

		score := max(
			Similarity(q, NormalizeName(name)),
			Similarity(q, NormalizeName(LastSegment(name))),
		)

		list = append(list, Candidate{Name: name, Score: score})
	}

	sort.Sort(list)

	return list
}

// Suggest returns up to limit known names close enough to query.
func Suggest(query string, known []string, limit int) []string {
	return Rank(query, known).AboveThreshold(DefaultThreshold).Top(limit).Names()
}
