package index

import "github.com/google/btree"

// DefaultBTreeDegree is the fan-out used when the caller passes a degree
// below the minimum the underlying library accepts.
const DefaultBTreeDegree = 32

// GBTree adapts github.com/google/btree's generic B-tree to the Index
// interface. The library always overwrites on ReplaceOrInsert, so the
// duplicate policy is enforced here in the adapter.
type GBTree[K, R any] struct {
	tr     *btree.BTreeG[gbEntry[K, R]]
	cmp    Comparator[K]
	policy DuplicatePolicy
	degree int
}

// gbEntry pairs a key with its record; ordering only ever consults the key.
type gbEntry[K, R any] struct {
	key K
	rec R
}

// NewGBTree creates an empty B-tree-backed index ordered by cmp.
// degree is the B-tree fan-out; values below 2 fall back to
// DefaultBTreeDegree.
func NewGBTree[K, R any](cmp Comparator[K], policy DuplicatePolicy, degree int) *GBTree[K, R] {
	if degree < 2 {
		degree = DefaultBTreeDegree
	}
	less := func(a, b gbEntry[K, R]) bool {
		return cmp(a.key, b.key) < 0
	}
	return &GBTree[K, R]{
		tr:     btree.NewG(degree, less),
		cmp:    cmp,
		policy: policy,
		degree: degree,
	}
}

// Insert adds key→rec following the duplicate policy. RejectDuplicates
// probes first and leaves an existing entry alone; OverwriteDuplicates
// lets ReplaceOrInsert swap it and inspects the returned previous entry.
func (t *GBTree[K, R]) Insert(key K, rec R) InsertOutcome {
	probe := gbEntry[K, R]{key: key}
	if t.policy == RejectDuplicates {
		if t.tr.Has(probe) {
			return Ignored
		}
		t.tr.ReplaceOrInsert(gbEntry[K, R]{key: key, rec: rec})
		return Inserted
	}
	if _, replaced := t.tr.ReplaceOrInsert(gbEntry[K, R]{key: key, rec: rec}); replaced {
		return Replaced
	}
	return Inserted
}

// Search looks up a key. Returns the stored record and true if found.
func (t *GBTree[K, R]) Search(key K) (R, bool) {
	if e, ok := t.tr.Get(gbEntry[K, R]{key: key}); ok {
		return e.rec, true
	}
	var zero R
	return zero, false
}

// Update applies fn to the record stored under key and keeps the result.
// Returns false if the key was not found.
func (t *GBTree[K, R]) Update(key K, fn func(R) R) bool {
	e, ok := t.tr.Get(gbEntry[K, R]{key: key})
	if !ok {
		return false
	}
	e.rec = fn(e.rec)
	t.tr.ReplaceOrInsert(e)
	return true
}

// Delete removes a key. Returns false if the key was not found.
func (t *GBTree[K, R]) Delete(key K) bool {
	_, ok := t.tr.Delete(gbEntry[K, R]{key: key})
	return ok
}

// Ascend visits every pair in ascending key order until fn returns false.
func (t *GBTree[K, R]) Ascend(fn func(key K, rec R) bool) {
	t.tr.Ascend(func(e gbEntry[K, R]) bool {
		return fn(e.key, e.rec)
	})
}

// Len returns the number of stored pairs.
func (t *GBTree[K, R]) Len() int { return t.tr.Len() }

// Height returns the minimum level count that can hold Len() entries at
// the configured degree. The library does not expose its node structure,
// so this is an analytic figure, not a measurement; splits keep nodes at
// least half full, so the real depth is at most one level deeper.
func (t *GBTree[K, R]) Height() int {
	n := t.tr.Len()
	if n == 0 {
		return 0
	}
	maxItems := 2*t.degree - 1
	h, capacity, levelNodes := 1, maxItems, 1
	for capacity < n {
		levelNodes *= 2 * t.degree
		capacity += levelNodes * maxItems
		h++
	}
	return h
}

// Kind reports "btree".
func (t *GBTree[K, R]) Kind() string { return KindBTree }
