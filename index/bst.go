package index

// BST is an unbalanced binary search tree. Its shape depends entirely on
// insertion order: random keys give near-logarithmic paths, while sorted
// input degenerates into a linked list with O(N) operations. Callers that
// need a guaranteed bound pick AVL or GBTree instead.
// It implements the Index interface.
type BST[K, R any] struct {
	root   *bstNode[K, R]
	cmp    Comparator[K]
	policy DuplicatePolicy
	size   int
}

type bstNode[K, R any] struct {
	key   K
	rec   R
	left  *bstNode[K, R]
	right *bstNode[K, R]
}

// NewBST creates an empty tree ordered by cmp. policy decides how Insert
// treats keys that are already present.
func NewBST[K, R any](cmp Comparator[K], policy DuplicatePolicy) *BST[K, R] {
	return &BST[K, R]{cmp: cmp, policy: policy}
}

// Insert adds key→rec. Returns Inserted for a new key; for an existing
// key the policy decides: RejectDuplicates leaves the tree untouched and
// returns Ignored, OverwriteDuplicates swaps the record in place and
// returns Replaced.
func (t *BST[K, R]) Insert(key K, rec R) InsertOutcome {
	var out InsertOutcome
	t.root, out = t.insert(t.root, key, rec)
	if out == Inserted {
		t.size++
	}
	return out
}

// insert descends into the subtree rooted at n and returns its (possibly
// new) root. Reassigning the child link on the way back up is what lets
// an empty link grow a node without parent pointers.
func (t *BST[K, R]) insert(n *bstNode[K, R], key K, rec R) (*bstNode[K, R], InsertOutcome) {
	if n == nil {
		return &bstNode[K, R]{key: key, rec: rec}, Inserted
	}
	var out InsertOutcome
	switch c := t.cmp(key, n.key); {
	case c < 0:
		n.left, out = t.insert(n.left, key, rec)
	case c > 0:
		n.right, out = t.insert(n.right, key, rec)
	default:
		if t.policy == OverwriteDuplicates {
			n.rec = rec
			return n, Replaced
		}
		return n, Ignored
	}
	return n, out
}

// Search looks up a key. Returns the stored record and true if found.
func (t *BST[K, R]) Search(key K) (R, bool) {
	if n := t.lookup(key); n != nil {
		return n.rec, true
	}
	var zero R
	return zero, false
}

// Update applies fn to the record stored under key and keeps the result.
// Returns false if the key was not found.
func (t *BST[K, R]) Update(key K, fn func(R) R) bool {
	n := t.lookup(key)
	if n == nil {
		return false
	}
	n.rec = fn(n.rec)
	return true
}

func (t *BST[K, R]) lookup(key K) *bstNode[K, R] {
	n := t.root
	for n != nil {
		switch c := t.cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Delete removes a key. Returns false if the key was not found; deleting
// an absent key leaves the tree unchanged.
func (t *BST[K, R]) Delete(key K) bool {
	var deleted bool
	t.root, deleted = t.delete(t.root, key)
	if deleted {
		t.size--
	}
	return deleted
}

// delete removes key from the subtree rooted at n and returns its new
// root. A node with two children is not unlinked: the in-order
// successor's key and record are copied into it, then the successor is
// deleted from the right subtree. The recursion terminates because the
// successor has no left child.
func (t *BST[K, R]) delete(n *bstNode[K, R], key K) (*bstNode[K, R], bool) {
	if n == nil {
		return nil, false
	}
	var deleted bool
	switch c := t.cmp(key, n.key); {
	case c < 0:
		n.left, deleted = t.delete(n.left, key)
	case c > 0:
		n.right, deleted = t.delete(n.right, key)
	default:
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		s := leftmost(n.right)
		n.key, n.rec = s.key, s.rec
		n.right, _ = t.delete(n.right, s.key)
		return n, true
	}
	return n, deleted
}

// leftmost returns the minimum node of the subtree rooted at n, which is
// the in-order successor when n is a right child of the deleted node.
func leftmost[K, R any](n *bstNode[K, R]) *bstNode[K, R] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Ascend visits every pair in ascending key order until fn returns false.
func (t *BST[K, R]) Ascend(fn func(key K, rec R) bool) {
	t.root.ascend(fn)
}

func (n *bstNode[K, R]) ascend(fn func(K, R) bool) bool {
	if n == nil {
		return true
	}
	if !n.left.ascend(fn) {
		return false
	}
	if !fn(n.key, n.rec) {
		return false
	}
	return n.right.ascend(fn)
}

// Len returns the number of stored pairs.
func (t *BST[K, R]) Len() int { return t.size }

// Height returns the number of nodes on the longest root-to-leaf path.
// Sorted insertion order makes this equal to Len.
func (t *BST[K, R]) Height() int { return t.root.height() }

func (n *bstNode[K, R]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// Kind reports "bst".
func (t *BST[K, R]) Kind() string { return KindBST }
