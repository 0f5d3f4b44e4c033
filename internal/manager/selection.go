package manager

// Selection is an ordered, duplicate-free set of items owned by the caller.
// Membership is decided by the equality function, not by pointer identity,
// so a selection survives the wholesale rebuild of the underlying items.
// The manager only reads a selection during reconciliation; between loads
// the caller may insert and remove freely.
type Selection[T any] struct {
	items []T
	equal func(a, b T) bool
}

// NewSelection returns an empty selection using equal for membership tests.
func NewSelection[T any](equal func(a, b T) bool) *Selection[T] {
	return &Selection[T]{equal: equal}
}

// Items returns the selected items in order. The returned slice is a copy.
func (s *Selection[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Contains reports whether item is selected.
func (s *Selection[T]) Contains(item T) bool {
	for _, it := range s.items {
		if s.equal(it, item) {
			return true
		}
	}
	return false
}

// Add appends item to the selection. Returns false if already present.
func (s *Selection[T]) Add(item T) bool {
	if s.Contains(item) {
		return false
	}
	s.items = append(s.items, item)
	return true
}

// Remove deletes item from the selection. Returns false if not present.
func (s *Selection[T]) Remove(item T) bool {
	for i, it := range s.items {
		if s.equal(it, item) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Replace swaps the entire selection for the given items, dropping duplicates.
func (s *Selection[T]) Replace(items ...T) {
	s.items = nil
	for _, item := range items {
		s.Add(item)
	}
}

// Clear empties the selection.
func (s *Selection[T]) Clear() {
	s.items = nil
}

// Len returns the number of selected items.
func (s *Selection[T]) Len() int {
	return len(s.items)
}

// reconcile rebuilds the selection against a freshly built item set. Items
// equal to a previously selected one stay selected, in the fresh set's order;
// everything else is dropped. New items are never auto-selected.
func (s *Selection[T]) reconcile(fresh []T) {
	var kept []T
	for _, item := range fresh {
		if s.Contains(item) {
			kept = append(kept, item)
		}
	}
	s.items = kept
}
