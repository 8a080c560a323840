package component

import "sort"

// Set is an unordered collection of unique references.
// The zero value is not usable; create with NewSet.
type Set map[Reference]struct{}

// NewSet creates a Set containing the given references.
func NewSet(refs ...Reference) Set {
	s := make(Set, len(refs))
	for _, ref := range refs {
		s[ref] = struct{}{}
	}
	return s
}

// Add inserts a reference into the set.
func (s Set) Add(ref Reference) {
	s[ref] = struct{}{}
}

// Has reports whether the set contains ref.
func (s Set) Has(ref Reference) bool {
	_, ok := s[ref]
	return ok
}

// Len returns the number of references in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members in ascending (mod id, component key) order.
func (s Set) Sorted() []Reference {
	refs := make([]Reference, 0, len(s))
	for ref := range s {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Less(refs[j])
	})
	return refs
}
