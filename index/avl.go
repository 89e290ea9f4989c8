package index

// AVL is a height-balanced binary search tree. Every node keeps its
// subtree height and rotations run after each insert and delete, so paths
// stay within ~1.44·log2(N) regardless of insertion order.
// It implements the Index interface.
type AVL[K, R any] struct {
	root   *avlNode[K, R]
	cmp    Comparator[K]
	policy DuplicatePolicy
	size   int
}

type avlNode[K, R any] struct {
	key    K
	rec    R
	height int
	left   *avlNode[K, R]
	right  *avlNode[K, R]
}

// NewAVL creates an empty balanced tree ordered by cmp. policy decides
// how Insert treats keys that are already present.
func NewAVL[K, R any](cmp Comparator[K], policy DuplicatePolicy) *AVL[K, R] {
	return &AVL[K, R]{cmp: cmp, policy: policy}
}

func (n *avlNode[K, R]) subtreeHeight() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *avlNode[K, R]) updateHeight() {
	n.height = 1 + max(n.left.subtreeHeight(), n.right.subtreeHeight())
}

// balanceFactor is left height minus right height; |bf| > 1 means the
// node violates the AVL invariant and needs a rotation.
func (n *avlNode[K, R]) balanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.subtreeHeight() - n.right.subtreeHeight()
}

func rotateLeft[K, R any](n *avlNode[K, R]) *avlNode[K, R] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n
	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

func rotateRight[K, R any](n *avlNode[K, R]) *avlNode[K, R] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n
	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

// rebalance restores the AVL invariant at n after a subtree changed,
// choosing among the four rotation cases by the child's balance factor.
func rebalance[K, R any](n *avlNode[K, R]) *avlNode[K, R] {
	n.updateHeight()
	bf := n.balanceFactor()
	if bf > 1 {
		if n.left.balanceFactor() < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}
	if bf < -1 {
		if n.right.balanceFactor() > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}

// Insert adds key→rec, rebalancing on the way back up. Duplicate keys
// follow the configured policy and never change the tree shape.
func (t *AVL[K, R]) Insert(key K, rec R) InsertOutcome {
	var out InsertOutcome
	t.root, out = t.insert(t.root, key, rec)
	if out == Inserted {
		t.size++
	}
	return out
}

func (t *AVL[K, R]) insert(n *avlNode[K, R], key K, rec R) (*avlNode[K, R], InsertOutcome) {
	if n == nil {
		return &avlNode[K, R]{key: key, rec: rec, height: 1}, Inserted
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
	if out == Inserted {
		return rebalance(n), out
	}
	return n, out
}

// Search looks up a key. Returns the stored record and true if found.
func (t *AVL[K, R]) Search(key K) (R, bool) {
	if n := t.lookup(key); n != nil {
		return n.rec, true
	}
	var zero R
	return zero, false
}

// Update applies fn to the record stored under key and keeps the result.
// Returns false if the key was not found. Records carry no height
// information, so no rebalancing is needed.
func (t *AVL[K, R]) Update(key K, fn func(R) R) bool {
	n := t.lookup(key)
	if n == nil {
		return false
	}
	n.rec = fn(n.rec)
	return true
}

func (t *AVL[K, R]) lookup(key K) *avlNode[K, R] {
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

// Delete removes a key, rebalancing on the way back up. Returns false if
// the key was not found.
func (t *AVL[K, R]) Delete(key K) bool {
	var deleted bool
	t.root, deleted = t.delete(t.root, key)
	if deleted {
		t.size--
	}
	return deleted
}

// delete mirrors the BST cases (leaf, single child, two children with
// in-order successor promotion), then rebalances every node on the path.
func (t *AVL[K, R]) delete(n *avlNode[K, R], key K) (*avlNode[K, R], bool) {
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
		s := n.right
		for s.left != nil {
			s = s.left
		}
		n.key, n.rec = s.key, s.rec
		n.right, _ = t.delete(n.right, s.key)
		return rebalance(n), true
	}
	if !deleted {
		return n, false
	}
	return rebalance(n), true
}

// Ascend visits every pair in ascending key order until fn returns false.
func (t *AVL[K, R]) Ascend(fn func(key K, rec R) bool) {
	t.root.ascend(fn)
}

func (n *avlNode[K, R]) ascend(fn func(K, R) bool) bool {
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
func (t *AVL[K, R]) Len() int { return t.size }

// Height returns the stored root height; no traversal needed.
func (t *AVL[K, R]) Height() int { return t.root.subtreeHeight() }

// Kind reports "avl".
func (t *AVL[K, R]) Kind() string { return KindAVL }
