// Package index provides ordered key→record indexes driven by a
// user-supplied comparator. Three interchangeable implementations exist:
// a plain binary search tree (BST), a height-balanced AVL tree, and an
// adapter over github.com/google/btree. All of them keep keys unique and
// enumerate in ascending comparator order.
package index

// Comparator orders keys. It must return a negative value when a sorts
// before b, zero when they are equal, and a positive value otherwise.
type Comparator[K any] func(a, b K) int

// DuplicatePolicy decides what Insert does when the key already exists.
// The policy is fixed per index at construction time.
type DuplicatePolicy int

const (
	// RejectDuplicates keeps the stored record untouched and reports Ignored.
	RejectDuplicates DuplicatePolicy = iota
	// OverwriteDuplicates replaces the stored record and reports Replaced.
	OverwriteDuplicates
)

func (p DuplicatePolicy) String() string {
	switch p {
	case RejectDuplicates:
		return "reject"
	case OverwriteDuplicates:
		return "overwrite"
	default:
		return "unknown"
	}
}

// InsertOutcome reports what a call to Insert did to the index.
type InsertOutcome int

const (
	// Inserted means the key was new and a node was added.
	Inserted InsertOutcome = iota
	// Replaced means the key existed and its record was overwritten
	// (OverwriteDuplicates only).
	Replaced
	// Ignored means the key existed and the insert was rejected
	// (RejectDuplicates only).
	Ignored
)

func (o InsertOutcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Replaced:
		return "replaced"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Index is an ordered map from unique keys to records.
// Implementations are not safe for concurrent use; callers synchronize
// externally (see store.Collection).
type Index[K, R any] interface {
	// Insert adds a key→record pair. When the key already exists, the
	// index's DuplicatePolicy decides between Replaced and Ignored.
	Insert(key K, rec R) InsertOutcome
	// Search looks up a key. Returns the record and true if found.
	Search(key K) (R, bool)
	// Update applies fn to the record stored under key and keeps the
	// result. Returns false if the key was not found. The key itself is
	// never rewritten; rekeying is delete + insert.
	Update(key K, fn func(R) R) bool
	// Delete removes a key. Returns false if the key was not found.
	Delete(key K) bool
	// Ascend visits every pair in ascending key order until fn returns
	// false. The traversal reads a consistent snapshot of the tree as it
	// walks; it must not be interleaved with mutations.
	Ascend(fn func(key K, rec R) bool)
	// Len returns the number of stored pairs.
	Len() int
	// Height returns the number of nodes on the longest root-to-leaf
	// path, 0 when empty. For the B-tree adapter this is derived from
	// fan-out and length rather than measured.
	Height() int
	// Kind identifies the implementation: "bst", "avl" or "btree".
	Kind() string
}

// Kinds recognized by New.
const (
	KindBST   = "bst"
	KindAVL   = "avl"
	KindBTree = "btree"
)

// New builds an index of the given kind. Unknown kinds fall back to the
// plain BST. degree only applies to KindBTree.
func New[K, R any](kind string, cmp Comparator[K], policy DuplicatePolicy, degree int) Index[K, R] {
	switch kind {
	case KindAVL:
		return NewAVL[K, R](cmp, policy)
	case KindBTree:
		return NewGBTree[K, R](cmp, policy, degree)
	default:
		return NewBST[K, R](cmp, policy)
	}
}
