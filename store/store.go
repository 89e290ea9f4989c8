package store

import (
	"strings"
	"sync"

	"github.com/willf/bloom"

	"rosterdb/index"
)

// Collection wraps one ordered index behind the process-wide concurrency
// model: a single sync.RWMutex, writers exclusive, readers shared. The
// index itself is never touched without the lock.
//
// An optional bloom filter answers definite misses on the read path
// without walking the tree. Deletions leave stale positives behind,
// which simply fall through to the authoritative tree miss.
type Collection[R any] struct {
	name   string
	mu     sync.RWMutex
	ix     index.Index[string, R]
	policy index.DuplicatePolicy
	keyOf  func(R) string
	sizeOf func(R) int64
	filter *bloom.BloomFilter // nil when the prefilter is disabled
	stats  Stats
}

func newCollection[R any](
	name string,
	ix index.Index[string, R],
	policy index.DuplicatePolicy,
	keyOf func(R) string,
	sizeOf func(R) int64,
	filter *bloom.BloomFilter,
) *Collection[R] {
	return &Collection[R]{
		name:   name,
		ix:     ix,
		policy: policy,
		keyOf:  keyOf,
		sizeOf: sizeOf,
		filter: filter,
	}
}

// Name returns the collection name used in errors and reports.
func (c *Collection[R]) Name() string { return c.name }

// Kind reports which index implementation backs the collection.
func (c *Collection[R]) Kind() string { return c.ix.Kind() }

// Policy reports how the collection treats duplicate keys.
func (c *Collection[R]) Policy() index.DuplicatePolicy { return c.policy }

// Insert stores rec under its own key. A duplicate key follows the
// collection's policy: RejectDuplicates keeps the stored record and
// returns a *DuplicateKeyError, OverwriteDuplicates replaces it silently.
func (c *Collection[R]) Insert(rec R) (index.InsertOutcome, error) {
	key := c.keyOf(rec)
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.ix.Insert(key, rec)
	switch out {
	case index.Ignored:
		c.stats.recordDuplicate()
		return out, &DuplicateKeyError{Collection: c.name, Key: key}
	case index.Replaced:
		c.stats.recordDuplicate()
	default:
		c.stats.recordInsert()
		if c.filter != nil {
			c.filter.AddString(key)
		}
	}
	return out, nil
}

// Get returns the record stored under id, or a *NotFoundError.
func (c *Collection[R]) Get(id string) (R, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	c.stats.recordSearch()
	if c.filter != nil && !c.filter.TestString(id) {
		c.stats.recordBloomSkip()
		var zero R
		return zero, &NotFoundError{Collection: c.name, Key: id}
	}
	rec, ok := c.ix.Search(id)
	if !ok {
		var zero R
		return zero, &NotFoundError{Collection: c.name, Key: id}
	}
	c.stats.recordHit()
	return rec, nil
}

// Update applies fn to the record under id and stores the result.
// Returns a *NotFoundError when the key is absent; fn is not called then.
func (c *Collection[R]) Update(id string, fn func(R) R) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ix.Update(id, fn) {
		return &NotFoundError{Collection: c.name, Key: id}
	}
	c.stats.recordUpdate()
	return nil
}

// Delete removes the record under id. Returns a *NotFoundError when the
// key is absent; the index stays untouched in that case.
func (c *Collection[R]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ix.Delete(id) {
		return &NotFoundError{Collection: c.name, Key: id}
	}
	c.stats.recordDelete()
	return nil
}

// List returns every record in ascending key order. The slice is a
// snapshot; later mutations do not touch it.
func (c *Collection[R]) List() []R {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]R, 0, c.ix.Len())
	c.ix.Ascend(func(_ string, rec R) bool {
		out = append(out, rec)
		return true
	})
	return out
}

// Len returns the number of stored records.
func (c *Collection[R]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ix.Len()
}

// Height returns the backing index's current height.
func (c *Collection[R]) Height() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ix.Height()
}

// Stats returns a snapshot of the operation counters.
func (c *Collection[R]) Stats() Snapshot { return c.stats.Snapshot() }

// Options configures Open. The zero value gives plain BSTs with no
// bloom prefilter.
type Options struct {
	IndexKind   string // "bst", "avl" or "btree"; empty means "bst"
	BTreeDegree int    // fan-out for "btree"; 0 picks the default
	BloomSize   uint   // filter bits; 0 disables the prefilter
	BloomHashes uint   // hash functions per key
}

// Store bundles the two record collections. Students reject duplicate
// IDs, so re-registering cannot clobber an enrolment. Conduct cases
// overwrite, so filing a case again replaces the previous one.
type Store struct {
	Students *Collection[Student]
	Cases    *Collection[ConductCase]
}

// Open builds both collections on fresh indexes of the configured kind.
func Open(opts Options) *Store {
	var students, cases *bloom.BloomFilter
	if opts.BloomSize > 0 {
		hashes := opts.BloomHashes
		if hashes == 0 {
			hashes = 3
		}
		students = bloom.New(opts.BloomSize, hashes)
		cases = bloom.New(opts.BloomSize, hashes)
	}
	return &Store{
		Students: newCollection(
			"student",
			index.New[string, Student](opts.IndexKind, strings.Compare, index.RejectDuplicates, opts.BTreeDegree),
			index.RejectDuplicates,
			Student.Key,
			studentMemSize,
			students,
		),
		Cases: newCollection(
			"case",
			index.New[string, ConductCase](opts.IndexKind, strings.Compare, index.OverwriteDuplicates, opts.BTreeDegree),
			index.OverwriteDuplicates,
			ConductCase.Key,
			caseMemSize,
			cases,
		),
	}
}
