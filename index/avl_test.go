package index

import (
	"math/rand"
	"strings"
	"testing"
)

// verifyAVL walks the subtree and fails the test on a stale height or a
// balance factor outside [-1, 1]. Returns the verified height.
func verifyAVL[K, R any](t *testing.T, n *avlNode[K, R]) int {
	t.Helper()
	if n == nil {
		return 0
	}
	lh := verifyAVL(t, n.left)
	rh := verifyAVL(t, n.right)
	if want := 1 + max(lh, rh); n.height != want {
		t.Fatalf("stored height = %d, want %d", n.height, want)
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		t.Fatalf("balance factor = %d, want within [-1, 1]", bf)
	}
	return n.height
}

func TestAVL_SortedInsertStaysBalanced(t *testing.T) {
	tr := NewAVL[int, int](func(a, b int) int { return a - b }, RejectDuplicates)
	const n = 1024
	for i := 0; i < n; i++ {
		tr.Insert(i, i)
	}
	verifyAVL(t, tr.root)
	// 1.44·log2(1024+2) ≈ 14; anything near n would mean rotations never ran.
	if h := tr.Height(); h > 15 {
		t.Errorf("height after sorted insert = %d, want <= 15", h)
	}
	if got := tr.Len(); got != n {
		t.Errorf("len = %d, want %d", got, n)
	}
}

func TestAVL_RotationCases(t *testing.T) {
	cases := []struct {
		name   string
		insert []string
		root   string
	}{
		{"left-left", []string{"c", "b", "a"}, "b"},
		{"right-right", []string{"a", "b", "c"}, "b"},
		{"left-right", []string{"c", "a", "b"}, "b"},
		{"right-left", []string{"a", "c", "b"}, "b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewAVL[string, int](strings.Compare, RejectDuplicates)
			for i, k := range tc.insert {
				tr.Insert(k, i)
			}
			if tr.root.key != tc.root {
				t.Errorf("root = %q, want %q", tr.root.key, tc.root)
			}
			if h := tr.Height(); h != 2 {
				t.Errorf("height = %d, want 2", h)
			}
			verifyAVL(t, tr.root)
			wantKeys(t, tr, "a", "b", "c")
		})
	}
}

func TestAVL_DeleteRebalances(t *testing.T) {
	tr := NewAVL[int, int](func(a, b int) int { return a - b }, RejectDuplicates)
	for i := 0; i < 64; i++ {
		tr.Insert(i, i)
	}
	// Carve out one side so deletions must rotate.
	for i := 0; i < 48; i++ {
		if !tr.Delete(i) {
			t.Fatalf("delete %d should return true", i)
		}
		verifyAVL(t, tr.root)
	}
	if got := tr.Len(); got != 16 {
		t.Errorf("len = %d, want 16", got)
	}
	for i := 48; i < 64; i++ {
		if _, ok := tr.Search(i); !ok {
			t.Errorf("search %d should return true", i)
		}
	}
}

func TestAVL_ChurnKeepsInvariant(t *testing.T) {
	tr := NewAVL[int, int](func(a, b int) int { return a - b }, OverwriteDuplicates)
	rng := rand.New(rand.NewSource(7))
	live := make(map[int]bool)

	for step := 0; step < 5000; step++ {
		k := rng.Intn(500)
		if rng.Intn(3) == 0 {
			if live[k] != tr.Delete(k) {
				t.Fatalf("step %d: delete %d disagreed with model", step, k)
			}
			delete(live, k)
		} else {
			tr.Insert(k, step)
			live[k] = true
		}
	}
	verifyAVL(t, tr.root)
	if got := tr.Len(); got != len(live) {
		t.Errorf("len = %d, want %d", got, len(live))
	}
}

func TestAVL_SuccessorPromotion(t *testing.T) {
	tr := NewAVL[string, int](strings.Compare, RejectDuplicates)
	for i, k := range []string{"M", "B", "T", "A", "C", "S", "Z"} {
		tr.Insert(k, i)
	}
	if !tr.Delete("M") {
		t.Fatal("delete M should return true")
	}
	verifyAVL(t, tr.root)
	wantKeys(t, tr, "A", "B", "C", "S", "T", "Z")
	if rec, ok := tr.Search("S"); !ok || rec != 5 {
		t.Errorf("search S = (%d, %v), want (5, true)", rec, ok)
	}
}
