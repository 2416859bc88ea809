package pinyin

import "slices"

// Split returns every way to cut word into consecutive members of legal.
// Segmentations with fewer syllables come first; ties keep discovery
// order, which tries shorter leading syllables first.
func Split(word string, legal *Set) [][]string {
	if word == "" || legal.Len() == 0 {
		return nil
	}

	var out [][]string
	splitFrom(word, legal, nil, &out)
	slices.SortStableFunc(out, func(a, b []string) int {
		return len(a) - len(b)
	})
	return out
}

func splitFrom(rest string, legal *Set, prefix []string, out *[][]string) {
	// i starts at 1: an empty member must never match.
	for i := 1; i <= len(rest); i++ {
		head := rest[:i]
		if !legal.Contains(head) {
			continue
		}
		path := append(slices.Clip(prefix), head)
		if i == len(rest) {
			*out = append(*out, path)
			continue
		}
		splitFrom(rest[i:], legal, path, out)
	}
}
