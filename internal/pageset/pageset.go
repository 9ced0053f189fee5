// Package pageset tracks the set of page indices visited while walking a
// PDB table's page chain, so the database engine can detect cycles in
// O(pages) memory.
package pageset

// Set is a visited-page tracker. The zero value is ready to use.
type Set struct {
	seen map[uint32]struct{}
}

// Insert records index as visited and reports whether it was already
// present (a cycle).
func (s *Set) Insert(index uint32) (alreadySeen bool) {
	if s.seen == nil {
		s.seen = make(map[uint32]struct{})
	}
	if _, ok := s.seen[index]; ok {
		return true
	}
	s.seen[index] = struct{}{}
	return false
}

// Len reports how many distinct page indices have been recorded.
func (s *Set) Len() int {
	return len(s.seen)
}
