package collections

// Set is an unordered collection of distinct values. The zero value is not
// usable; create one with make or NewSet.
type Set[V comparable] map[V]struct{}

func NewSet[V comparable](values ...V) Set[V] {
	set := make(Set[V], len(values))
	for _, value := range values {
		set.Add(value)
	}
	return set
}

// Add an element to the set, reporting whether it was newly added
func (set Set[V]) Add(value V) bool {
	if set.Contains(value) {
		return false
	}
	set[value] = struct{}{}
	return true
}

// Contains returns whether the element exists within the set
func (set Set[V]) Contains(value V) bool {
	_, contains := set[value]
	return contains
}
