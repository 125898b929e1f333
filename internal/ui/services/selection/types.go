package selection

import "slices"

// Set is the explicit multi-selection of torrent ids
type Set map[int64]struct{}

// NewSet creates a set holding ids
func NewSet(ids ...int64) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has returns true if id is in the set
func (s Set) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in ascending order
func (s Set) Sorted() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clone returns an independent copy
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Selected is what an action applies to: either Current, the highlighted
// row, or List, the explicit selection. It is computed on demand by Resolve
// and never stored.
type Selected interface {
	// IDs returns the ids to send to the daemon. An empty result means
	// there is nothing to act on.
	IDs() []int64
	selected()
}

// Current is the single highlighted torrent
type Current struct {
	ID int64
}

func (c Current) IDs() []int64 { return []int64{c.ID} }
func (Current) selected()      {}

// List is an explicit selection, possibly empty
type List struct {
	Set Set
}

func (l List) IDs() []int64 { return l.Set.Sorted() }
func (List) selected()      {}

// Resolve picks the operand for an action. The highlighted row wins when the
// explicit set is empty or preferHighlighted is set, provided a row is
// highlighted; otherwise the explicit set is used. Bulk actions pass false so
// that a built-up selection takes precedence over the cursor. Select passes
// true so it always toggles the row under the cursor.
func Resolve(explicit Set, highlighted int64, hasHighlight, preferHighlighted bool) Selected {
	if (len(explicit) == 0 || preferHighlighted) && hasHighlight {
		return Current{ID: highlighted}
	}
	return List{Set: explicit.Clone()}
}
