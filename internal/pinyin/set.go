package pinyin

import "slices"

// Set is an add-only collection of unique syllables.
// The zero value is ready to use.
type Set struct {
	members map[string]struct{}
}

// NewSet creates a set holding the given syllables.
func NewSet(syllables ...string) *Set {
	s := &Set{members: make(map[string]struct{}, len(syllables))}
	for _, v := range syllables {
		s.members[v] = struct{}{}
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *Set) Add(v string) bool {
	if s.members == nil {
		s.members = make(map[string]struct{})
	}
	if _, ok := s.members[v]; ok {
		return false
	}
	s.members[v] = struct{}{}
	return true
}

func (s *Set) Contains(v string) bool {
	_, ok := s.members[v]
	return ok
}

func (s *Set) Len() int {
	return len(s.members)
}

// Elements returns the members in map iteration order, which differs
// between calls.
func (s *Set) Elements() []string {
	out := make([]string, 0, len(s.members))
	for v := range s.members {
		out = append(out, v)
	}
	return out
}

// Sorted returns the members in lexicographic order.
func (s *Set) Sorted() []string {
	out := s.Elements()
	slices.Sort(out)
	return out
}
