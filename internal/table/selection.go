package table

import "slices"

// Selection tracks checked record ids independently of filter, sort and page.
// Not safe for concurrent use.
type Selection struct {
	marked map[string]bool
}

func NewSelection() *Selection {
	return &Selection{marked: map[string]bool{}}
}

// Toggle flips id and returns its new state.
func (s *Selection) Toggle(id string) bool {
	s.marked[id] = !s.marked[id]
	if !s.marked[id] {
		delete(s.marked, id)
		return false
	}
	return true
}

// SelectAll marks every id given. Callers pass the whole unfiltered store,
// not the visible page.
func (s *Selection) SelectAll(ids []string) {
	for _, id := range ids {
		s.marked[id] = true
	}
}

func (s *Selection) Clear() {
	clear(s.marked)
}

// Retain prunes ids that are no longer in the store and returns how many went.
func (s *Selection) Retain(ids []string) int {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}
	n := 0
	for id := range s.marked {
		if _, ok := keep[id]; !ok {
			delete(s.marked, id)
			n++
		}
	}
	return n
}

func (s *Selection) IsSelected(id string) bool { return s.marked[id] }

func (s *Selection) Count() int { return len(s.marked) }

// SelectedIDs returns the selected ids in sorted order.
func (s *Selection) SelectedIDs() []string {
	out := make([]string, 0, len(s.marked))
	for id, on := range s.marked {
		if on {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}
