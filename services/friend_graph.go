package services

import "github.com/camden-git/paranuarabackend/models"

// IndexSet is a set of person indices.
type IndexSet map[int]struct{}

// Has reports membership.
func (s IndexSet) Has(index int) bool {
	_, ok := s[index]
	return ok
}

// Intersect returns the indices present in both sets.
func (s IndexSet) Intersect(other IndexSet) IndexSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(IndexSet, len(small))
	for idx := range small {
		if large.Has(idx) {
			out[idx] = struct{}{}
		}
	}
	return out
}

// Slice returns the members in no particular order.
func (s IndexSet) Slice() []int {
	out := make([]int, 0, len(s))
	for idx := range s {
		out = append(out, idx)
	}
	return out
}

// DirectFriendIndices returns the indices listed in person.Friends.
// References are not resolved, so a friend who no longer exists still counts.
func DirectFriendIndices(person *models.Person) IndexSet {
	out := make(IndexSet, len(person.Friends))
	for _, f := range person.Friends {
		out[f.Index] = struct{}{}
	}
	return out
}
