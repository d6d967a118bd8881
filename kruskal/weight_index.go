package kruskal

import (
	"github.com/tidwall/btree"
)

// Entry is one weight index slot: the edge weight and its insertion index.
// Indices are unique, so (Weight, Index) orders entries totally.
type Entry struct {
	Weight int64
	Index  int
}

// entryLess sorts by weight, then by insertion index for equal weights.
func entryLess(a, b Entry) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}

	return a.Index < b.Index
}

// WeightIndex is the ascending (weight, index) sequence that drives traversal.
//
// A cursor marks the first entry not yet consumed. Consumed entries stay in
// the index; entries removed with Remove are gone for good.
type WeightIndex struct {
	tree    *btree.BTreeG[Entry]
	cursor  Entry
	started bool
}

// NewWeightIndex returns an empty index.
func NewWeightIndex() *WeightIndex {
	return &WeightIndex{tree: btree.NewBTreeG[Entry](entryLess)}
}

// Insert adds an entry. Complexity: O(log E).
func (w *WeightIndex) Insert(e Entry) {
	w.tree.Set(e)
}

// Remove deletes an entry permanently and reports whether it was present.
func (w *WeightIndex) Remove(e Entry) bool {
	_, ok := w.tree.Delete(e)

	return ok
}

// Len returns the number of entries still in the index, consumed ones included.
func (w *WeightIndex) Len() int {
	return w.tree.Len()
}

// Next returns the first entry at or after the cursor without consuming it.
func (w *WeightIndex) Next() (Entry, bool) {
	var (
		next  Entry
		found bool
	)
	iter := func(e Entry) bool {
		next, found = e, true
		return false
	}
	if w.started {
		w.tree.Ascend(w.cursor, iter)
	} else {
		w.tree.Scan(iter)
	}

	return next, found
}

// Advance moves the cursor just past e.
func (w *WeightIndex) Advance(e Entry) {
	w.cursor = Entry{Weight: e.Weight, Index: e.Index + 1}
	w.started = true
}

// Entries returns every entry in traversal order.
func (w *WeightIndex) Entries() []Entry {
	return w.tree.Items()
}

// Pending returns the entries at or after the cursor in traversal order.
func (w *WeightIndex) Pending() []Entry {
	if !w.started {
		return w.Entries()
	}
	var out []Entry
	w.tree.Ascend(w.cursor, func(e Entry) bool {
		out = append(out, e)
		return true
	})

	return out
}
